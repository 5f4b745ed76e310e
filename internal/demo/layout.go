package demo

import (
	"github.com/vango-dev/htgo/el"
	"github.com/vango-dev/htgo/pkg/node"
)

// Theme selects the color scheme of the layout.
var Theme = node.NewContext("theme", node.WithDefault("light"))

const styles = `body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:60rem}
.theme-dark{background:#111;color:#eee}
.card{border:1px solid #ccc;border-radius:.5rem;padding:1rem;margin:1rem 0}
table{border-collapse:collapse;width:100%}
td,th{border-bottom:1px solid #ddd;padding:.25rem .5rem;text-align:left}
.num{text-align:right}`

// Layout wraps a page body in the shared document.
func Layout(title string, body ...node.Node) node.Node {
	return el.Html.With(el.Lang("en")).Children(
		el.Head.Children(
			el.Meta.With(el.Charset("utf-8")),
			el.Meta.With(el.Name("viewport"), el.Content("width=device-width, initial-scale=1")),
			el.Title.Children(title, " · htgo"),
			el.Style.Children(el.Raw(styles)),
		),
		Theme.Consumer(func(theme string) node.Node {
			return el.Body.With(el.Class("theme-"+theme)).Children(
				el.Header.Children(nav()),
				el.Main.Children(el.H1.Children(title), body),
				el.Footer.Children(el.Small.Children("Rendered by htgo")),
			)
		}),
	)
}

func nav() node.Node {
	return el.Nav.With(el.AriaLabel("pages")).Children(
		el.Ul.Children(
			node.For(pages, func(p Page) node.Node {
				return el.Li.Children(el.A.With(el.Href(p.Path())).Children(p.Title))
			}),
		),
	)
}

// Card is a titled box.
var Card = node.WithChildren(func(children node.Node, title string) node.Node {
	return el.Section.With(".card").Children(el.H2.Children(title), children)
})
