package node

import (
	"context"
	stderrors "errors"
	"iter"

	"github.com/vango-dev/htgo/internal/errors"
)

// Renderable is implemented by values that produce their own chunks. The
// renderer delegates to IterChunks, forwarding the active context values.
type Renderable interface {
	IterChunks(vals Values) iter.Seq2[string, error]
}

// AsyncRenderable is a Renderable that can also render under a context.
// Asynchronous rendering prefers AIterChunks when present.
type AsyncRenderable interface {
	Renderable
	AIterChunks(ctx context.Context, vals Values) iter.Seq2[string, error]
}

// chunkWalker is implemented by the package's own node types so the
// renderer can recurse without going through iterators.
type chunkWalker interface {
	walkChunks(r *renderer, vals Values, yield func(string) bool) error
}

// errStopped ends a walk when the consumer stops pulling.
var errStopped = stderrors.New("node: iteration stopped")

// renderer holds the state of one render call. ctx is nil in synchronous
// mode.
type renderer struct {
	ctx context.Context
}

func (r *renderer) async() bool { return r.ctx != nil }

// emit hands one chunk to the consumer.
func (r *renderer) emit(s string, yield func(string) bool) error {
	if s == "" {
		return nil
	}
	if r.ctx != nil {
		if err := r.ctx.Err(); err != nil {
			return err
		}
	}
	if !yield(s) {
		return errStopped
	}
	return nil
}

// walk resolves x and emits its chunks depth first, left to right.
func (r *renderer) walk(x Node, vals Values, yield func(string) bool) error {
	kind := Classify(x)
	for kind == KindThunk || kind == KindFuture {
		var err error
		if kind == KindThunk {
			x, err = r.callThunk(x)
		} else {
			x, err = r.await(x.(*Future))
		}
		if err != nil {
			return err
		}
		kind = Classify(x)
	}

	switch kind {
	case KindEmpty:
		return nil
	case KindText:
		return r.emit(text(x), yield)
	case KindInt:
		return r.emit(intText(x), yield)
	case KindRenderable:
		return r.delegate(x, vals, yield)
	case KindGenerator:
		g := x.(*Generator)
		if err := g.take(); err != nil {
			return err
		}
		return r.each(g.seq, vals, yield)
	case KindIter:
		seq, ok := x.(iter.Seq[Node])
		if !ok {
			seq = x.(func(func(Node) bool))
		}
		return r.each(seq, vals, yield)
	case KindSequence:
		return eachChild(x, func(child Node) error {
			return r.walk(child, vals, yield)
		})
	case KindChan:
		return r.drain(x, vals, yield)
	default:
		return errors.Errorf("H001", repr(x))
	}
}

func (r *renderer) callThunk(x Node) (Node, error) {
	next, err := call(x)
	if err != nil {
		if r.ctx != nil && stderrors.Is(err, r.ctx.Err()) {
			return nil, err
		}
		return nil, errors.Errorf("H033", funcName(x), err).Wrap(err)
	}
	return next, nil
}

func (r *renderer) await(f *Future) (Node, error) {
	if !r.async() {
		return nil, errors.Errorf("H032", repr(f))
	}
	v, err := f.fn(r.ctx)
	if err != nil {
		if ctxErr := r.ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Errorf("H033", funcName(f.fn), err).Wrap(err)
	}
	return v, nil
}

func (r *renderer) delegate(x Node, vals Values, yield func(string) bool) error {
	if w, ok := x.(chunkWalker); ok {
		return w.walkChunks(r, vals, yield)
	}

	var chunks iter.Seq2[string, error]
	if ar, ok := x.(AsyncRenderable); ok && r.async() {
		chunks = ar.AIterChunks(r.ctx, vals)
	} else {
		chunks = x.(Renderable).IterChunks(vals)
	}
	for chunk, err := range chunks {
		if err != nil {
			return err
		}
		if err := r.emit(chunk, yield); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) each(seq iter.Seq[Node], vals Values, yield func(string) bool) error {
	var err error
	seq(func(child Node) bool {
		err = r.walk(child, vals, yield)
		return err == nil
	})
	return err
}

func (r *renderer) drain(x Node, vals Values, yield func(string) bool) error {
	if !r.async() {
		return errors.Errorf("H032", repr(x))
	}
	var ch <-chan Node
	switch v := x.(type) {
	case <-chan Node:
		ch = v
	case chan Node:
		ch = v
	}

	for {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		case child, ok := <-ch:
			if !ok {
				return nil
			}
			if err := r.walk(child, vals, yield); err != nil {
				return err
			}
		}
	}
}

// validate checks the eagerly inspectable part of a child tree. Lazy shapes
// are left for the renderer.
func validate(x Node) error {
	switch Classify(x) {
	case KindInvalid:
		return errors.Errorf("H001", repr(x))
	case KindSequence:
		return eachChild(x, validate)
	case KindRenderable:
		if e, ok := x.(interface{ Err() error }); ok {
			return e.Err()
		}
	}
	return nil
}
