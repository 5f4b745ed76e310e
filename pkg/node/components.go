package node

import (
	"context"
	"fmt"
	"iter"
)

// If returns n when cond is true and nil otherwise.
func If(cond bool, n Node) Node {
	if cond {
		return n
	}
	return nil
}

// For renders fn for every item, in order.
func For[T any](items []T, fn func(T) Node) *Fragment {
	children := make([]Node, len(items))
	for i, item := range items {
		children[i] = fn(item)
	}
	return &Fragment{node: children, err: validate(children)}
}

// Component is a function that takes its children separately from its
// props, so it can be used like an element:
//
//	var card = node.WithChildren(func(children node.Node, title string) node.Node {
//		return el.Section.With(".card").Children(el.H2.Children(title), children)
//	})
//
//	card.Props("Orders").Children(el.P.Children("No orders yet"))
type Component[P any] struct {
	fn    func(children Node, props P) Node
	props P
}

// WithChildren creates a Component from fn.
func WithChildren[P any](fn func(children Node, props P) Node) Component[P] {
	return Component[P]{fn: fn}
}

// Props returns a copy of c bound to props.
func (c Component[P]) Props(props P) Component[P] {
	c.props = props
	return c
}

// Children calls the component with children and returns its node. A single
// argument is used as is, several form a sequence.
func (c Component[P]) Children(children ...Node) Node {
	var n Node
	switch len(children) {
	case 0:
	case 1:
		n = children[0]
	default:
		n = children
	}
	return c.fn(n, c.props)
}

func (c Component[P]) walkChunks(r *renderer, vals Values, yield func(string) bool) error {
	return r.walk(c.fn(nil, c.props), vals, yield)
}

// IterChunks renders c without children.
func (c Component[P]) IterChunks(vals Values) iter.Seq2[string, error] {
	return IterChunks(c, vals)
}

// AIterChunks renders c without children under ctx.
func (c Component[P]) AIterChunks(ctx context.Context, vals Values) iter.Seq2[string, error] {
	return AIterChunks(ctx, c, vals)
}

// String renders c without children, returning "" if rendering fails.
func (c Component[P]) String() string {
	s, _ := Render(c, Values{})
	return string(s)
}

// GoString describes c.
func (c Component[P]) GoString() string {
	return fmt.Sprintf("WithChildren(%s, %#v)", funcName(c.fn), c.props)
}
