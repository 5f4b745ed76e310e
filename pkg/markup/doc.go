// Package markup provides the escaping primitive used by every htgo package.
//
// Text is escaped when it is rendered unless it is marked safe. A value is
// safe when it is a Safe string, an html/template.HTML value, or any type
// implementing HTMLer:
//
//	type Markdown struct{ src string }
//
//	func (m Markdown) HTML() string { return renderMarkdown(m.src) }
//
// Escaping converts &, <, >, " and ' to entities so the result is valid both
// as element content and inside a double-quoted attribute value.
package markup
