package node

import (
	"context"
	"fmt"
	"iter"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/attrs"
	"github.com/vango-dev/htgo/pkg/markup"
)

// ElementKind distinguishes the element variants.
type ElementKind uint8

const (
	RegularElement  ElementKind = iota // <div>...</div>
	VoidElement                        // <img>, no children, no closing tag
	DocumentElement                    // <html>, preceded by a doctype
)

// String returns the string representation of the ElementKind.
func (k ElementKind) String() string {
	switch k {
	case VoidElement:
		return "VoidElement"
	case DocumentElement:
		return "DocumentElement"
	default:
		return "Element"
	}
}

const doctype = "<!doctype html>"

// Element is an immutable HTML element builder. The zero value is not
// usable; create elements with NewElement, NewVoidElement or
// NewDocumentElement.
type Element struct {
	name     string
	kind     ElementKind
	attrs    attrs.List
	children Node

	attrErr  error
	childErr error
}

// NewElement creates a regular element.
func NewElement(name string) *Element {
	return &Element{name: name, kind: RegularElement}
}

// NewVoidElement creates a self-closing element that rejects children.
func NewVoidElement(name string) *Element {
	return &Element{name: name, kind: VoidElement}
}

// NewDocumentElement creates an element rendered after a doctype.
func NewDocumentElement(name string) *Element {
	return &Element{name: name, kind: DocumentElement}
}

// Name returns the tag name.
func (e *Element) Name() string { return e.name }

// Kind returns the element variant.
func (e *Element) Kind() ElementKind { return e.kind }

// Attrs returns the serialized attribute string, with a leading space when
// non-empty.
func (e *Element) Attrs() string { return e.attrs.String() }

// Err returns the first construction error recorded on the element.
func (e *Element) Err() error {
	if e.attrErr != nil {
		return e.attrErr
	}
	return e.childErr
}

// With returns a copy of e with args merged into its attributes. args is an
// optional leading "#id.class" string followed by attrs.Map values, then
// attrs.Attr values. Calls accumulate: a later value for the same name
// replaces the earlier one in place, and false or nil removes it.
func (e *Element) With(args ...any) *Element {
	if len(args) == 0 {
		return e
	}
	n := *e
	if e.attrErr == nil {
		list, err := attrs.Merge(e.attrs, args...)
		if err != nil {
			n.attrErr = err
		} else {
			n.attrs = list
		}
	}
	return &n
}

// Children returns a copy of e with children replacing any previous ones.
// A single argument is used as is, several form a sequence. Literal children
// are checked immediately; lazy ones when rendered.
func (e *Element) Children(children ...Node) *Element {
	n := *e
	if e.kind == VoidElement {
		n.children = nil
		n.childErr = errors.Errorf("H002", e.name)
		return &n
	}
	switch len(children) {
	case 0:
		n.children = nil
	case 1:
		n.children = children[0]
	default:
		n.children = children
	}
	n.childErr = validate(n.children)
	return &n
}

func (e *Element) walkChunks(r *renderer, vals Values, yield func(string) bool) error {
	if err := e.Err(); err != nil {
		return err
	}
	if e.kind == DocumentElement {
		if err := r.emit(doctype, yield); err != nil {
			return err
		}
	}
	if err := r.emit("<"+e.name+e.attrs.String()+">", yield); err != nil {
		return err
	}
	if e.kind == VoidElement {
		return nil
	}
	if err := r.walk(e.children, vals, yield); err != nil {
		return err
	}
	return r.emit("</"+e.name+">", yield)
}

// IterChunks renders e lazily. See IterChunks.
func (e *Element) IterChunks(vals Values) iter.Seq2[string, error] {
	return IterChunks(e, vals)
}

// AIterChunks renders e under ctx. See AIterChunks.
func (e *Element) AIterChunks(ctx context.Context, vals Values) iter.Seq2[string, error] {
	return AIterChunks(ctx, e, vals)
}

// Render renders e to markup.
func (e *Element) Render() (markup.Safe, error) { return Render(e, Values{}) }

// Bytes renders e to UTF-8 bytes.
func (e *Element) Bytes() ([]byte, error) { return Bytes(e, Values{}) }

// String renders e, returning "" if rendering fails. Use Render to observe
// the error.
func (e *Element) String() string {
	s, _ := e.Render()
	return string(s)
}

// HTML implements markup.HTMLer, so an element can be used as trusted text
// or as an attribute value.
func (e *Element) HTML() string { return e.String() }

// GoString describes e without rendering its children.
func (e *Element) GoString() string {
	if e.kind == VoidElement {
		return fmt.Sprintf("<%s '<%s%s>'>", e.kind, e.name, e.attrs.String())
	}
	return fmt.Sprintf("<%s '<%s%s>...</%s>'>", e.kind, e.name, e.attrs.String(), e.name)
}
