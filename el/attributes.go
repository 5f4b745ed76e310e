package el

import (
	"strconv"

	"github.com/vango-dev/htgo/pkg/attrs"
)

// Prop creates an attribute from an identifier-style name: Prop("hx_post",
// "/save") renders hx-post="/save" and Prop("for_", "email") renders
// for="email".
func Prop(name string, value any) Attr {
	return attrs.A(name, value)
}

// Global attributes

func ID(id string) Attr {
	return attrs.ID(id)
}
func Class(parts ...any) Attr {
	return attrs.Class(parts...)
}
func ClassIf(condition bool, class string) Attr {
	return attrs.ClassIf(condition, class)
}
func AttrIf(condition bool, a Attr) Attr {
	return attrs.AttrIf(condition, a)
}
func StyleAttr(style string) Attr {
	return attrs.Style(style)
}
func Data(key string, value any) Attr {
	return attrs.Data(key, value)
}
func DataAttr(key string, value any) Attr {
	return attrs.Data(key, value)
}
func Hidden() Attr {
	return attrs.Hidden()
}
func TitleAttr(title string) Attr {
	return attrs.Title(title)
}
func Lang(lang string) Attr {
	return attrs.Lang(lang)
}
func Dir(dir string) Attr {
	return attrs.Dir(dir)
}
func TabIndex(index int) Attr {
	return attrs.TabIndex(index)
}
func AccessKey(key string) Attr {
	return attrs.A("accesskey", key)
}
func ContentEditable(editable bool) Attr {
	return attrs.A("contenteditable", strconv.FormatBool(editable))
}
func Draggable() Attr {
	return attrs.A("draggable", "true")
}
func Spellcheck(check bool) Attr {
	return attrs.A("spellcheck", strconv.FormatBool(check))
}

// Accessibility

func Role(role string) Attr {
	return attrs.Role(role)
}
func Aria(name string, value any) Attr {
	return attrs.Aria(name, value)
}
func AriaLabel(label string) Attr {
	return attrs.AriaLabel(label)
}
func AriaHidden(hidden bool) Attr {
	return attrs.AriaHidden(hidden)
}
func AriaExpanded(expanded bool) Attr {
	return attrs.Aria("expanded", expanded)
}
func AriaDescribedBy(id string) Attr {
	return attrs.Aria("describedby", id)
}
func AriaLabelledBy(id string) Attr {
	return attrs.Aria("labelledby", id)
}
func AriaLive(mode string) Attr {
	return attrs.Aria("live", mode)
}
func AriaControls(id string) Attr {
	return attrs.Aria("controls", id)
}
func AriaCurrent(value string) Attr {
	return attrs.Aria("current", value)
}

// Links

func Href(url string) Attr {
	return attrs.Href(url)
}
func Target(target string) Attr {
	return attrs.Target(target)
}
func Rel(rel string) Attr {
	return attrs.Rel(rel)
}
func Download(filename ...string) Attr {
	if len(filename) > 0 {
		return attrs.A("download", filename[0])
	}
	return attrs.A("download", true)
}

// Forms

func Name(name string) Attr {
	return attrs.Name(name)
}
func Value(value any) Attr {
	return attrs.Value(value)
}
func Type(t string) Attr {
	return attrs.Type(t)
}
func Placeholder(text string) Attr {
	return attrs.Placeholder(text)
}
func Disabled() Attr {
	return attrs.Disabled()
}
func Readonly() Attr {
	return attrs.Readonly()
}
func Required() Attr {
	return attrs.Required()
}
func Checked() Attr {
	return attrs.Checked()
}
func Selected() Attr {
	return attrs.Selected()
}
func Multiple() Attr {
	return attrs.Multiple()
}
func Autofocus() Attr {
	return attrs.Autofocus()
}
func Autocomplete(value string) Attr {
	return attrs.Autocomplete(value)
}
func Pattern(pattern string) Attr {
	return attrs.A("pattern", pattern)
}
func MinLength(n int) Attr {
	return attrs.A("minlength", n)
}
func MaxLength(n int) Attr {
	return attrs.A("maxlength", n)
}
func Min(value string) Attr {
	return attrs.A("min", value)
}
func Max(value string) Attr {
	return attrs.A("max", value)
}
func Step(value string) Attr {
	return attrs.A("step", value)
}
func Rows(n int) Attr {
	return attrs.A("rows", n)
}
func Cols(n int) Attr {
	return attrs.A("cols", n)
}
func Action(url string) Attr {
	return attrs.Action(url)
}
func Method(method string) Attr {
	return attrs.Method(method)
}
func Enctype(enctype string) Attr {
	return attrs.A("enctype", enctype)
}
func Novalidate() Attr {
	return attrs.A("novalidate", true)
}
func For(id string) Attr {
	return attrs.For(id)
}
func FormAttr(id string) Attr {
	return attrs.A("form", id)
}

// Media

func Src(url string) Attr {
	return attrs.Src(url)
}
func Alt(text string) Attr {
	return attrs.Alt(text)
}
func Width(w int) Attr {
	return attrs.Width(w)
}
func Height(h int) Attr {
	return attrs.Height(h)
}
func Loading(mode string) Attr {
	return attrs.A("loading", mode)
}
func Srcset(srcset string) Attr {
	return attrs.A("srcset", srcset)
}
func Controls() Attr {
	return attrs.A("controls", true)
}

// Tables

func Colspan(n int) Attr {
	return attrs.Colspan(n)
}
func Rowspan(n int) Attr {
	return attrs.Rowspan(n)
}
func Scope(scope string) Attr {
	return attrs.A("scope", scope)
}

// Document

func Charset(charset string) Attr {
	return attrs.Charset(charset)
}
func Content(content string) Attr {
	return attrs.Content(content)
}
func HttpEquiv(value string) Attr {
	return attrs.A("http-equiv", value)
}
func Open() Attr {
	return attrs.A("open", true)
}
func Defer_() Attr {
	return attrs.Defer()
}
func Async() Attr {
	return attrs.Async()
}
func Crossorigin(value string) Attr {
	return attrs.A("crossorigin", value)
}
func Integrity(hash string) Attr {
	return attrs.A("integrity", hash)
}
