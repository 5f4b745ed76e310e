package node

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/vango-dev/htgo/pkg/markup"
)

// Fragment groups nodes without a wrapping tag.
type Fragment struct {
	node Node
	err  error
}

// Frag creates a fragment. A single argument is used as is, several form a
// sequence.
func Frag(children ...Node) *Fragment {
	var n Node
	switch len(children) {
	case 0:
	case 1:
		n = children[0]
	default:
		n = children
	}
	return &Fragment{node: n, err: validate(n)}
}

// Comment creates an HTML comment. "--" sequences are removed from text
// since comments cannot contain them.
func Comment(text string) *Fragment {
	text = strings.ReplaceAll(text, "--", "")
	return &Fragment{node: markup.Safe("<!-- " + text + " -->")}
}

// Err returns the construction error of the fragment, if any.
func (f *Fragment) Err() error { return f.err }

func (f *Fragment) walkChunks(r *renderer, vals Values, yield func(string) bool) error {
	if f.err != nil {
		return f.err
	}
	return r.walk(f.node, vals, yield)
}

// IterChunks renders f lazily. See IterChunks.
func (f *Fragment) IterChunks(vals Values) iter.Seq2[string, error] {
	return IterChunks(f, vals)
}

// AIterChunks renders f under ctx. See AIterChunks.
func (f *Fragment) AIterChunks(ctx context.Context, vals Values) iter.Seq2[string, error] {
	return AIterChunks(ctx, f, vals)
}

// Render renders f to markup.
func (f *Fragment) Render() (markup.Safe, error) { return Render(f, Values{}) }

// Bytes renders f to UTF-8 bytes.
func (f *Fragment) Bytes() ([]byte, error) { return Bytes(f, Values{}) }

// String renders f, returning "" if rendering fails.
func (f *Fragment) String() string {
	s, _ := f.Render()
	return string(s)
}

// HTML implements markup.HTMLer.
func (f *Fragment) HTML() string { return f.String() }

// GoString describes f.
func (f *Fragment) GoString() string {
	return fmt.Sprintf("<Fragment %s>", repr(f.node))
}
