package node

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/vango-dev/htgo/internal/errors"
)

var (
	div  = NewElement("div")
	span = NewElement("span")
	ul   = NewElement("ul")
	li   = NewElement("li")
	p    = NewElement("p")
	img  = NewVoidElement("img")
	br   = NewVoidElement("br")
	html = NewDocumentElement("html")
)

// mustRender renders n and fails the test on error.
func mustRender(t *testing.T, n Node) string {
	t.Helper()
	s, err := Render(n, Values{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return string(s)
}

// mustRenderAsync renders n in asynchronous mode and fails the test on error.
func mustRenderAsync(t *testing.T, n Node) string {
	t.Helper()
	s, err := RenderContext(context.Background(), n, Values{})
	if err != nil {
		t.Fatalf("RenderContext() error: %v", err)
	}
	return string(s)
}

// collect returns all chunks and the terminating error, if any.
func collect(seq func(func(string, error) bool)) ([]string, error) {
	var out []string
	for chunk, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, chunk)
	}
	return out, nil
}

func assertKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if !stderrors.Is(err, &errors.Error{Kind: kind}) {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}
