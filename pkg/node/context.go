package node

import (
	"context"
	"fmt"
	"iter"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/markup"
)

// Values is the set of context values visible to a subtree. It is never
// modified in place: providers pass an extended copy down to their children,
// so siblings and concurrent renders are unaffected. The zero value is empty.
type Values struct {
	m map[any]any
}

// Len returns the number of bound contexts.
func (v Values) Len() int { return len(v.m) }

func (v Values) with(key, value any) Values {
	m := make(map[any]any, len(v.m)+1)
	for k, val := range v.m {
		m[k] = val
	}
	m[key] = value
	return Values{m: m}
}

func (v Values) lookup(key any) (any, bool) {
	val, ok := v.m[key]
	return val, ok
}

// Set returns a copy of vals with c bound to value. It builds the initial
// values handed to a render entry point.
func Set[T any](vals Values, c *Context[T], value T) Values {
	return vals.with(c, value)
}

// Get returns the value bound to c in vals, without falling back to the
// default.
func Get[T any](vals Values, c *Context[T]) (T, bool) {
	val, ok := vals.lookup(c)
	if !ok {
		var zero T
		return zero, false
	}
	// A nil bound to an interface-typed context is the zero T.
	v, _ := val.(T)
	return v, true
}

// Context is a named channel for passing a value down a tree without
// threading it through every function. Contexts are compared by identity.
type Context[T any] struct {
	name       string
	def        T
	hasDefault bool
}

// ContextOption configures a Context.
type ContextOption[T any] func(*Context[T])

// WithDefault sets the value consumers see when no provider is active.
func WithDefault[T any](value T) ContextOption[T] {
	return func(c *Context[T]) {
		c.def = value
		c.hasDefault = true
	}
}

// NewContext creates a context. name is used in error messages.
func NewContext[T any](name string, opts ...ContextOption[T]) *Context[T] {
	c := &Context[T]{name: name}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the context name.
func (c *Context[T]) Name() string { return c.name }

// Default returns the default value and whether one was set.
func (c *Context[T]) Default() (T, bool) { return c.def, c.hasDefault }

// GoString describes c.
func (c *Context[T]) GoString() string {
	return fmt.Sprintf("Context[%T](%q)", c.def, c.name)
}

// Provider binds value to c while n is rendered.
func (c *Context[T]) Provider(value T, n Node) *ContextProvider[T] {
	return &ContextProvider[T]{ctx: c, value: value, node: n, err: validate(n)}
}

// Consumer renders the node returned by fn, called with the active value
// of c.
func (c *Context[T]) Consumer(fn func(T) Node) *ContextConsumer[T] {
	return &ContextConsumer[T]{ctx: c, name: funcName(fn), fn: fn}
}

// Consume turns a component taking a context value and one argument into a
// component taking only the argument:
//
//	var userBadge = node.Consume(currentUser, func(u User, size string) node.Node { ... })
//	el.Nav.Children(userBadge("small"))
//
// Consumers nest: fn may itself return another consumer.
func Consume[T, A any](c *Context[T], fn func(T, A) Node) func(A) Node {
	name := funcName(fn)
	return func(arg A) Node {
		return &ContextConsumer[T]{ctx: c, name: name, fn: func(v T) Node {
			return fn(v, arg)
		}}
	}
}

// ContextProvider renders a subtree with a context value bound.
type ContextProvider[T any] struct {
	ctx   *Context[T]
	value T
	node  Node
	err   error
}

// Err returns the construction error of the provider, if any.
func (p *ContextProvider[T]) Err() error { return p.err }

func (p *ContextProvider[T]) walkChunks(r *renderer, vals Values, yield func(string) bool) error {
	if p.err != nil {
		return p.err
	}
	return r.walk(p.node, vals.with(p.ctx, p.value), yield)
}

// IterChunks renders p lazily.
func (p *ContextProvider[T]) IterChunks(vals Values) iter.Seq2[string, error] {
	return IterChunks(p, vals)
}

// AIterChunks renders p under ctx.
func (p *ContextProvider[T]) AIterChunks(ctx context.Context, vals Values) iter.Seq2[string, error] {
	return AIterChunks(ctx, p, vals)
}

// Render renders p to markup.
func (p *ContextProvider[T]) Render() (markup.Safe, error) { return Render(p, Values{}) }

// Bytes renders p to UTF-8 bytes.
func (p *ContextProvider[T]) Bytes() ([]byte, error) { return Bytes(p, Values{}) }

// String renders p, returning "" if rendering fails.
func (p *ContextProvider[T]) String() string {
	s, _ := p.Render()
	return string(s)
}

// ContextConsumer renders the result of a function of a context value.
type ContextConsumer[T any] struct {
	ctx  *Context[T]
	name string
	fn   func(T) Node
}

func (c *ContextConsumer[T]) walkChunks(r *renderer, vals Values, yield func(string) bool) error {
	var value T
	if v, ok := vals.lookup(c.ctx); ok {
		value, _ = v.(T)
	} else if c.ctx.hasDefault {
		value = c.ctx.def
	} else {
		return errors.Errorf("H030", c.ctx.name, c.name)
	}
	return r.walk(c.fn(value), vals, yield)
}

// IterChunks renders c lazily.
func (c *ContextConsumer[T]) IterChunks(vals Values) iter.Seq2[string, error] {
	return IterChunks(c, vals)
}

// AIterChunks renders c under ctx.
func (c *ContextConsumer[T]) AIterChunks(ctx context.Context, vals Values) iter.Seq2[string, error] {
	return AIterChunks(ctx, c, vals)
}

// Render renders c to markup.
func (c *ContextConsumer[T]) Render() (markup.Safe, error) { return Render(c, Values{}) }

// Bytes renders c to UTF-8 bytes.
func (c *ContextConsumer[T]) Bytes() ([]byte, error) { return Bytes(c, Values{}) }

// String renders c, returning "" if rendering fails.
func (c *ContextConsumer[T]) String() string {
	s, _ := c.Render()
	return string(s)
}
