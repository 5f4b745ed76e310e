// Package backend lets template-driven code render htgo nodes.
//
// A Backend resolves dotted template names such as "pages.index" to Go
// functions building a node from the request and a data map, the way a
// template engine resolves names to files:
//
//	backend.Register("pages.index", func(r *http.Request, data map[string]any) node.Node {
//	    return el.H1.Children("hello ", data["name"])
//	})
//	html, err := backend.Render("pages.index", r, map[string]any{"name": "ann"})
//
// The package also bridges both directions with other template systems:
// FuncMap embeds nodes in html/template, ToTempl and FromTempl convert
// between nodes and templ components.
package backend
