package node

import (
	"html/template"
	"iter"
	"reflect"
	"strconv"

	"github.com/vango-dev/htgo/pkg/markup"
)

// Node is anything the renderer accepts. See the package documentation for
// the accepted shapes.
type Node = any

// Kind is the shape of a node as seen by the renderer.
type Kind uint8

const (
	KindInvalid    Kind = iota // Not a valid child
	KindEmpty                  // nil, true, false
	KindText                   // Escaped or pre-escaped text
	KindInt                    // Decimal integer
	KindRenderable             // Produces its own chunks
	KindSequence               // Slice or array
	KindIter                   // Reusable iter.Seq
	KindGenerator              // One-shot *Generator
	KindThunk                  // Zero-argument function
	KindFuture                 // *Future, async only
	KindChan                   // Channel of nodes, async only
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindInt:
		return "Int"
	case KindRenderable:
		return "Renderable"
	case KindSequence:
		return "Sequence"
	case KindIter:
		return "Iter"
	case KindGenerator:
		return "Generator"
	case KindThunk:
		return "Thunk"
	case KindFuture:
		return "Future"
	case KindChan:
		return "Chan"
	default:
		return "Invalid"
	}
}

// Lazy reports whether nodes of this kind are only inspected at render time.
func (k Kind) Lazy() bool {
	switch k {
	case KindIter, KindGenerator, KindThunk, KindFuture, KindChan:
		return true
	}
	return false
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Classify reports how the renderer treats x.
func Classify(x Node) Kind {
	switch v := x.(type) {
	case nil, bool:
		return KindEmpty
	case *Element:
		if v == nil {
			return KindEmpty
		}
		return KindRenderable
	case *Fragment:
		if v == nil {
			return KindEmpty
		}
		return KindRenderable
	case chunkWalker, Renderable, AsyncRenderable:
		if isNilPointer(x) {
			return KindEmpty
		}
		return KindRenderable
	case string, markup.Safe, template.HTML:
		return KindText
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return KindInt
	case *Generator:
		if v == nil {
			return KindEmpty
		}
		return KindGenerator
	case *Future:
		if v == nil {
			return KindEmpty
		}
		return KindFuture
	case iter.Seq[Node], func(func(Node) bool):
		return KindIter
	case <-chan Node, chan Node:
		return KindChan
	case markup.HTMLer:
		return KindText
	case []byte:
		return KindInvalid
	case []Node, []*Element, []string:
		return KindSequence
	case func() Node, func() (Node, error), func() *Element, func() string:
		return KindThunk
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.String:
		return KindText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt
	case reflect.Slice, reflect.Array:
		// Byte buffers look iterable but are never meaningful content.
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindInvalid
		}
		return KindSequence
	case reflect.Func:
		if rv.IsNil() {
			return KindInvalid
		}
		t := rv.Type()
		if t.NumIn() != 0 {
			return KindInvalid
		}
		if t.NumOut() == 1 || (t.NumOut() == 2 && t.Out(1) == errorType) {
			return KindThunk
		}
	}
	return KindInvalid
}

// isNilPointer reports whether x is a typed nil pointer.
func isNilPointer(x Node) bool {
	rv := reflect.ValueOf(x)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// text returns the markup for a KindText node.
func text(x Node) string {
	if s, ok := markup.ToHTML(x); ok {
		return s
	}
	return markup.Escape(reflect.ValueOf(x).String())
}

// intText returns the decimal form of a KindInt node.
func intText(x Node) string {
	switch v := x.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	}
	rv := reflect.ValueOf(x)
	if rv.CanInt() {
		return strconv.FormatInt(rv.Int(), 10)
	}
	return strconv.FormatUint(rv.Uint(), 10)
}

// eachChild calls fn for every element of a KindSequence node, stopping at
// the first error.
func eachChild(x Node, fn func(Node) error) error {
	switch v := x.(type) {
	case []Node:
		for _, c := range v {
			if err := fn(c); err != nil {
				return err
			}
		}
		return nil
	case []*Element:
		for _, c := range v {
			if err := fn(c); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, c := range v {
			if err := fn(c); err != nil {
				return err
			}
		}
		return nil
	}

	rv := reflect.ValueOf(x)
	for i := 0; i < rv.Len(); i++ {
		if err := fn(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

// call invokes a KindThunk node.
func call(x Node) (Node, error) {
	switch f := x.(type) {
	case func() Node:
		return f(), nil
	case func() (Node, error):
		return f()
	case func() *Element:
		return f(), nil
	case func() string:
		return f(), nil
	}

	out := reflect.ValueOf(x).Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
