package node

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/vango-dev/htgo/internal/errors"
)

// Generator is a one-shot sequence of nodes. Rendering it a second time
// fails instead of silently producing duplicated or empty output.
type Generator struct {
	seq      iter.Seq[Node]
	consumed atomic.Bool
}

// Once wraps seq so it can be rendered only once. Use it for sequences
// backed by resources that cannot be replayed, such as database cursors.
func Once(seq iter.Seq[Node]) *Generator {
	return &Generator{seq: seq}
}

// Consumed reports whether the generator has been rendered.
func (g *Generator) Consumed() bool { return g.consumed.Load() }

func (g *Generator) take() error {
	if !g.consumed.CompareAndSwap(false, true) {
		return errors.Errorf("H031", "generator")
	}
	return nil
}

// GoString describes g.
func (g *Generator) GoString() string {
	return fmt.Sprintf("<Generator consumed=%t>", g.Consumed())
}

// Future is a node produced by a function that may block. It can only be
// rendered asynchronously; fn receives the render context and is called
// every time the future is rendered.
type Future struct {
	fn func(ctx context.Context) (Node, error)
}

// Await creates a Future.
func Await(fn func(ctx context.Context) (Node, error)) *Future {
	return &Future{fn: fn}
}

// GoString describes f.
func (f *Future) GoString() string {
	return fmt.Sprintf("<Future %s>", funcName(f.fn))
}
