package el

import (
	"github.com/vango-dev/htgo/pkg/markup"
	"github.com/vango-dev/htgo/pkg/node"
)

// Frag groups nodes without a wrapping element.
func Frag(children ...Node) *Fragment {
	return node.Frag(children...)
}

// Comment renders an HTML comment.
func Comment(text string) *Fragment {
	return node.Comment(text)
}

// Raw marks html as safe. It is emitted without escaping, so it must never
// contain user input.
func Raw(html string) Safe {
	return markup.Safe(html)
}

// If returns n when cond is true.
func If(cond bool, n Node) Node {
	return node.If(cond, n)
}

// IfElse returns a when cond is true and b otherwise.
func IfElse(cond bool, a, b Node) Node {
	if cond {
		return a
	}
	return b
}

// Range renders fn for every item.
func Range[T any](items []T, fn func(T) Node) *Fragment {
	return node.For(items, fn)
}

// Nothing renders nothing.
func Nothing() Node {
	return nil
}
