package markup

import (
	"html/template"
	"strings"
)

// Safe is a string that is already valid markup and is never escaped again.
type Safe string

// HTML implements HTMLer.
func (s Safe) HTML() string { return string(s) }

// String returns the markup as a plain string.
func (s Safe) String() string { return string(s) }

// HTMLer is implemented by values that render themselves as trusted markup.
type HTMLer interface {
	HTML() string
}

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// Escape escapes text for safe inclusion in HTML content and attribute values.
func Escape(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	return replacer.Replace(s)
}

// ToHTML converts a text-like value to markup: strings are escaped, safe
// values pass through. ok is false for anything that is not text-like.
func ToHTML(v any) (s string, ok bool) {
	switch v := v.(type) {
	case string:
		return Escape(v), true
	case Safe:
		return string(v), true
	case template.HTML:
		return string(v), true
	case HTMLer:
		return v.HTML(), true
	}
	return "", false
}

// IsSafe reports whether v carries trusted markup.
func IsSafe(v any) bool {
	switch v.(type) {
	case Safe, template.HTML, HTMLer:
		return true
	}
	return false
}
