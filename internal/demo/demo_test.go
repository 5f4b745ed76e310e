package demo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	htgoerrors "github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/backend"
	"github.com/vango-dev/htgo/pkg/node"
)

func renderPage(t *testing.T, name, target string) *goquery.Document {
	t.Helper()
	p, err := Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	html, err := node.RenderContext(context.Background(), p.Build(httptest.NewRequest(http.MethodGet, target, nil)), node.Values{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(html), "<!doctype html>") {
		t.Errorf("page does not start with a doctype: %.40q", html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestIndexPage(t *testing.T) {
	doc := renderPage(t, "index", "/")

	if got := doc.Find("title").Text(); got != "Welcome · htgo" {
		t.Errorf("title = %q", got)
	}
	if !doc.Find("body").HasClass("theme-light") {
		t.Error("body should use the light theme")
	}
	if got := doc.Find("nav li").Length(); got != len(Pages()) {
		t.Errorf("nav has %d links, want %d", got, len(Pages()))
	}
	if got := doc.Find("code").Text(); got != "<script>" {
		t.Errorf("code = %q", got)
	}
	if got := doc.Find("section.card").Length(); got != 2 {
		t.Errorf("%d cards", got)
	}
}

func TestIndexPageDarkTheme(t *testing.T) {
	doc := renderPage(t, "index", "/?theme=dark")
	if !doc.Find("body").HasClass("theme-dark") {
		t.Error("body should use the dark theme")
	}
	if got := doc.Find("section.card strong").Text(); got != "dark" {
		t.Errorf("theme text = %q", got)
	}
}

func TestTablePage(t *testing.T) {
	doc := renderPage(t, "table", "/pages/table?rows=25&seed=7")
	if got := doc.Find("tbody tr").Length(); got != 25 {
		t.Errorf("%d rows, want 25", got)
	}
	first := doc.Find("tbody tr").First().Find("td")
	if first.Eq(0).Text() != "1" || !strings.Contains(first.Eq(2).Text(), "@") {
		t.Errorf("first row = %q", first.Text())
	}
}

func TestFakeRowsDeterministic(t *testing.T) {
	a, b := FakeRows(10, 42), FakeRows(10, 42)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should give the same rows")
	}
	if reflect.DeepEqual(a, FakeRows(10, 43)) {
		t.Error("different seeds should give different rows")
	}
}

func TestStreamPage(t *testing.T) {
	doc := renderPage(t, "stream", "/pages/stream?delay=0")
	if got := doc.Find("ol li").Length(); got != 3 {
		t.Errorf("%d feed items, want 3", got)
	}
	if !strings.Contains(doc.Find("section.card").First().Text(), "Query finished") {
		t.Error("future content missing")
	}
	if doc.Find("p.done").Length() != 1 {
		t.Error("generator content missing")
	}
}

func TestStreamPageNeedsAsync(t *testing.T) {
	p, _ := Lookup("stream")
	if !p.Async {
		t.Fatal("stream page should be marked async")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/?delay=0", nil).WithContext(ctx)
	_, err := node.Render(p.Build(req), node.Values{})
	if !errors.Is(err, &htgoerrors.Error{Kind: htgoerrors.KindMode}) {
		t.Errorf("err = %v, want a mode error", err)
	}
}

func TestStreamPageCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/?delay=5000", nil).WithContext(ctx)

	p, _ := Lookup("stream")
	_, err := node.RenderContext(ctx, p.Build(req), node.Values{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nope")
	if !errors.Is(err, &htgoerrors.Error{Code: "H081"}) {
		t.Fatalf("err = %v, want H081", err)
	}
}

func TestPagePath(t *testing.T) {
	for _, p := range Pages() {
		want := "/pages/" + p.Name
		if p.Name == "index" {
			want = "/"
		}
		if p.Path() != want {
			t.Errorf("%s path = %q", p.Name, p.Path())
		}
	}
}

func TestRegister(t *testing.T) {
	b := backend.New()
	Register(b)

	got, err := b.Render("demo.greeting", nil, map[string]any{"name": "<ann>"})
	if err != nil {
		t.Fatal(err)
	}
	if got != `<p class="greeting">Hello, <strong>&lt;ann&gt;</strong>!</p>` {
		t.Errorf("got %q", got)
	}

	for _, p := range Pages() {
		if _, err := b.Template("demo." + p.Name); err != nil {
			t.Errorf("demo.%s not registered: %v", p.Name, err)
		}
	}
	if _, err := b.Render("demo.index", httptest.NewRequest(http.MethodGet, "/", nil), nil); err != nil {
		t.Errorf("demo.index: %v", err)
	}
}
