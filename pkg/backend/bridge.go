package backend

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"iter"

	"github.com/a-h/templ"

	"github.com/vango-dev/htgo/pkg/node"
)

// FuncMap returns the html/template functions for embedding nodes:
//
//	{{ htgo .Sidebar }}
//
// The rendered markup is inserted without escaping.
func FuncMap() template.FuncMap {
	return template.FuncMap{"htgo": HTML}
}

// HTML renders n for html/template.
func HTML(n node.Node) (template.HTML, error) {
	s, err := node.Render(n, node.Values{})
	return template.HTML(s), err
}

// ToTempl wraps n as a templ component. The render honors the context the
// component is rendered with.
func ToTempl(n node.Node, vals node.Values) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := node.StreamTo(ctx, w, n, vals)
		return err
	})
}

// FromTempl wraps a templ component as a node. The component's output is
// inserted without escaping as a single chunk.
func FromTempl(c templ.Component) node.Node {
	return templNode{c}
}

type templNode struct {
	c templ.Component
}

func (t templNode) IterChunks(node.Values) iter.Seq2[string, error] {
	return t.AIterChunks(context.Background(), node.Values{})
}

func (t templNode) AIterChunks(ctx context.Context, _ node.Values) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var buf bytes.Buffer
		if err := t.c.Render(ctx, &buf); err != nil {
			yield("", err)
			return
		}
		yield(buf.String(), nil)
	}
}
