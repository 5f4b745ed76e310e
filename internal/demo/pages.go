package demo

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/vango-dev/htgo/el"
	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/backend"
	"github.com/vango-dev/htgo/pkg/node"
)

// Page is a demo page.
type Page struct {
	Name        string
	Title       string
	Description string

	// Async pages contain futures or channels and need the async renderer.
	Async bool

	Build func(r *http.Request) node.Node
}

// Path returns the URL the page is served at.
func (p Page) Path() string {
	if p.Name == "index" {
		return "/"
	}
	return "/pages/" + p.Name
}

var pages []Page

func init() {
	pages = []Page{
		{
			Name:        "index",
			Title:       "Welcome",
			Description: "Elements, components, contexts and lists.",
			Build:       indexPage,
		},
		{
			Name:        "table",
			Title:       "Customers",
			Description: "A large table of generated rows.",
			Build:       tablePage,
		},
		{
			Name:        "stream",
			Title:       "Streaming",
			Description: "Futures and channels resolved while the page streams.",
			Async:       true,
			Build:       streamPage,
		},
	}
}

// Pages returns the demo pages in navigation order.
func Pages() []Page {
	return append([]Page(nil), pages...)
}

// Lookup returns the page called name.
func Lookup(name string) (Page, error) {
	for _, p := range pages {
		if p.Name == name {
			return p, nil
		}
	}
	return Page{}, errors.Errorf("H081", name).
		WithSuggestion("Known pages: index, table, stream")
}

// Register adds every page to b as "demo.<name>", plus "demo.greeting",
// which greets data["name"].
func Register(b *backend.Backend) {
	for _, p := range pages {
		build := p.Build
		b.Register("demo."+p.Name, func(r *http.Request, _ map[string]any) node.Node {
			return build(r)
		})
	}
	b.Register("demo.greeting", func(_ *http.Request, data map[string]any) node.Node {
		name, _ := data["name"].(string)
		if name == "" {
			name = "stranger"
		}
		return el.P.With(".greeting").Children("Hello, ", el.Strong.Children(name), "!")
	})
}

func indexPage(r *http.Request) node.Node {
	theme := "light"
	if r != nil && r.URL.Query().Get("theme") == "dark" {
		theme = "dark"
	}
	return Theme.Provider(theme, Layout("Welcome",
		el.P.Children("This page is built from plain Go values. Text such as ",
			el.Code.Children("<script>"), " is escaped."),
		Card.Props("Pages").Children(
			el.Dl.Children(node.For(pages, func(p Page) node.Node {
				return node.Frag(
					el.Dt.Children(el.A.With(el.Href(p.Path())).Children(p.Title)),
					el.Dd.Children(p.Description),
				)
			})),
		),
		Card.Props("Theme").Children(
			Theme.Consumer(func(t string) node.Node {
				return el.P.Children("The current theme is ", el.Strong.Children(t), ".")
			}),
			node.If(theme == "light", el.A.With(el.Href("/?theme=dark")).Children("Switch to dark")),
			node.If(theme == "dark", el.A.With(el.Href("/")).Children("Switch to light")),
		),
		node.Comment("index page"),
	))
}

func tablePage(r *http.Request) node.Node {
	rows, seed := 100, int64(1)
	if r != nil {
		rows = queryInt(r, "rows", rows)
		seed = int64(queryInt(r, "seed", int(seed)))
	}
	return Layout("Customers", Table(FakeRows(rows, seed)))
}

// streamPage shows content arriving over time. The delay query parameter
// sets the pause in milliseconds before each delayed part.
func streamPage(r *http.Request) node.Node {
	ctx, delay := context.Background(), 300*time.Millisecond
	if r != nil {
		ctx = r.Context()
		delay = time.Duration(queryInt(r, "delay", 300)) * time.Millisecond
	}

	return Layout("Streaming",
		el.P.Children("The header was sent before the rest of this page was ready."),
		Card.Props("Slow query").Children(
			node.Await(func(ctx context.Context) (node.Node, error) {
				if err := sleep(ctx, delay); err != nil {
					return nil, err
				}
				return el.P.Children("Query finished after ", delay.String(), "."), nil
			}),
		),
		Card.Props("Live feed").Children(el.Ol.Children(feed(ctx, delay, 3))),
		node.Once(func(yield func(node.Node) bool) {
			yield(el.P.With(".done").Children("Done."))
		}),
	)
}

// feed returns a channel producing n items spread over delay. It stops
// early when ctx is done.
func feed(ctx context.Context, delay time.Duration, n int) <-chan node.Node {
	ch := make(chan node.Node)
	go func() {
		defer close(ch)
		for i := 1; i <= n; i++ {
			if sleep(ctx, delay/time.Duration(n)) != nil {
				return
			}
			select {
			case ch <- el.Li.Children("event ", i):
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}
