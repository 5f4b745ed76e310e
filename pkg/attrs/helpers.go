package attrs

import "strconv"

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute from classnames-style parts:
// Class("btn", map[string]bool{"active": on}).
func Class(parts ...any) Attr { return attr("class", parts) }

// ClassIf sets a single class when condition is true.
func ClassIf(condition bool, class string) Attr {
	return attr("class", map[string]bool{class: condition})
}

// AttrIf returns a when condition is true and an empty Attr otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Style sets the style attribute.
func Style(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute: Data("user_id", 7) renders data-user-id="7".
func Data(key string, value any) Attr { return attr("data-"+HTMLName(key), value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Aria creates an aria-* attribute. Booleans are written as "true"/"false"
// since ARIA states are enumerated, not boolean, attributes.
func Aria(name string, value any) Attr {
	if b, ok := value.(bool); ok {
		value = strconv.FormatBool(b)
	}
	return attr("aria-"+HTMLName(name), value)
}

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return Aria("hidden", hidden) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Global attributes

func Hidden() Attr            { return attr("hidden", true) }
func Title(title string) Attr { return attr("title", title) }
func Lang(lang string) Attr   { return attr("lang", lang) }
func Dir(dir string) Attr     { return attr("dir", dir) }

// Link attributes

func Href(url string) Attr      { return attr("href", url) }
func Target(target string) Attr { return attr("target", target) }
func Rel(rel string) Attr       { return attr("rel", rel) }

// Form attributes

func Name(name string) Attr          { return attr("name", name) }
func Value(value any) Attr           { return attr("value", value) }
func Type(t string) Attr             { return attr("type", t) }
func Placeholder(text string) Attr   { return attr("placeholder", text) }
func Disabled() Attr                 { return attr("disabled", true) }
func Readonly() Attr                 { return attr("readonly", true) }
func Required() Attr                 { return attr("required", true) }
func Checked() Attr                  { return attr("checked", true) }
func Selected() Attr                 { return attr("selected", true) }
func Multiple() Attr                 { return attr("multiple", true) }
func Autofocus() Attr                { return attr("autofocus", true) }
func Action(url string) Attr         { return attr("action", url) }
func Method(method string) Attr      { return attr("method", method) }
func For(id string) Attr             { return attr("for", id) }
func Autocomplete(value string) Attr { return attr("autocomplete", value) }

// Media attributes

func Src(url string) Attr { return attr("src", url) }
func Alt(text string) Attr { return attr("alt", text) }
func Width(w int) Attr     { return attr("width", w) }
func Height(h int) Attr    { return attr("height", h) }

// Table attributes

func Colspan(n int) Attr { return attr("colspan", n) }
func Rowspan(n int) Attr { return attr("rowspan", n) }

// Meta and script attributes

func Charset(charset string) Attr { return attr("charset", charset) }
func Content(content string) Attr { return attr("content", content) }
func Defer() Attr                 { return attr("defer", true) }
func Async() Attr                 { return attr("async", true) }
