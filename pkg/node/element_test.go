package node

import (
	"html/template"
	"strings"
	"testing"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/attrs"
	"github.com/vango-dev/htgo/pkg/markup"
)

type hook struct{ s string }

func (h hook) HTML() string { return h.s }

type label string

type count int

func TestRenderChildren(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"empty element", div, "<div></div>"},
		{"text", div.Children("hello"), "<div>hello</div>"},
		{"escaped text", div.Children(`<script>"'&`), "<div>&lt;script&gt;&#34;&#39;&amp;</div>"},
		{"safe", div.Children(markup.Safe("<b>x</b>")), "<div><b>x</b></div>"},
		{"template html", div.Children(template.HTML("<i>y</i>")), "<div><i>y</i></div>"},
		{"html hook", div.Children(hook{"<em>z</em>"}), "<div><em>z</em></div>"},
		{"int", div.Children(42), "<div>42</div>"},
		{"negative int", div.Children(int64(-7)), "<div>-7</div>"},
		{"uint", div.Children(uint8(9)), "<div>9</div>"},
		{"named string", div.Children(label("<a>")), "<div>&lt;a&gt;</div>"},
		{"named int", div.Children(count(3)), "<div>3</div>"},
		{"nil", div.Children(nil), "<div></div>"},
		{"true", div.Children(true), "<div></div>"},
		{"false", div.Children(false), "<div></div>"},
		{"several", div.Children("a", 1, nil, span.Children("b")), "<div>a1<span>b</span></div>"},
		{"nested element", div.Children(p.Children(span.Children("x"))), "<div><p><span>x</span></p></div>"},
		{"string slice", ul.Children([]string{"<", ">"}), "<ul>&lt;&gt;</ul>"},
		{"element slice", ul.Children([]*Element{li.Children("a"), li.Children("b")}), "<ul><li>a</li><li>b</li></ul>"},
		{"typed slice", div.Children([]int{1, 2, 3}), "<div>123</div>"},
		{"array", div.Children([2]string{"x", "y"}), "<div>xy</div>"},
		{"deep flattening", div.Children([]Node{[]Node{[]Node{[]Node{"a"}}}}, []Node{[]Node{[]Node{"b"}}}), "<div>ab</div>"},
		{"thunk", div.Children(func() Node { return "lazy" }), "<div>lazy</div>"},
		{"thunk chain", div.Children(func() Node { return func() Node { return 5 } }), "<div>5</div>"},
		{"thunk returning element", div.Children(func() *Element { return span }), "<div><span></span></div>"},
		{"typed thunk", div.Children(func() []string { return []string{"a", "b"} }), "<div>ab</div>"},
		{"thunk with error result", div.Children(func() (Node, error) { return "ok", nil }), "<div>ok</div>"},
		{"iter seq", div.Children(seqOf("a", "b")), "<div>ab</div>"},
		{"void", img.With(attrs.Src("a.png")), `<img src="a.png">`},
		{"void with bool attribute", br.With(attrs.Hidden()), `<br hidden>`},
		{"comment", Comment("hi -- there"), "<!-- hi  there -->"},
		{"fragment", Frag("a", span.Children("b"), "c"), "a<span>b</span>c"},
		{"empty fragment", Frag(), ""},
		{"nil element", (*Element)(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.node); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func seqOf(items ...Node) func(func(Node) bool) {
	return func(yield func(Node) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

func TestElementAttributes(t *testing.T) {
	got := mustRender(t, div.With(attrs.Map{"a": "1"}, attrs.Map{"a": "2", "b": "2"}, attrs.A("c", "3")))
	if want := `<div a="2" b="2" c="3"></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = mustRender(t, div.With(attrs.A("class", []any{"foo", map[string]bool{"bar": true, "baz": false}})))
	if want := `<div class="foo bar"></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for _, v := range []any{false, map[string]bool{"x": false}} {
		if got := mustRender(t, div.With(attrs.A("class_", v))); got != "<div></div>" {
			t.Errorf("class %v: got %q", v, got)
		}
	}
}

func TestWithIsCumulative(t *testing.T) {
	base := div.With("#main.a", attrs.A("title", "one"))
	got := mustRender(t, base.With(attrs.A("title", "two"), attrs.A("data_x", 1)).Children("x"))
	if want := `<div id="main" class="a" title="two" data-x="1">x</div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWithoutArgumentsReturnsSameElement(t *testing.T) {
	if div.With() != div {
		t.Error("With() should return the receiver")
	}
}

func TestBuildersDoNotMutate(t *testing.T) {
	withAttrs := div.With(".x")
	withChildren := div.Children("a")
	both := withAttrs.Children("b")

	if got := mustRender(t, div); got != "<div></div>" {
		t.Errorf("base element changed: %q", got)
	}
	if got := mustRender(t, withAttrs); got != `<div class="x"></div>` {
		t.Errorf("withAttrs = %q", got)
	}
	if got := mustRender(t, withChildren); got != "<div>a</div>" {
		t.Errorf("withChildren = %q", got)
	}
	if got := mustRender(t, both); got != `<div class="x">b</div>` {
		t.Errorf("both = %q", got)
	}
}

func TestChildrenReplace(t *testing.T) {
	got := mustRender(t, div.Children("a").Children("b"))
	if got != "<div>b</div>" {
		t.Errorf("got %q", got)
	}
	got = mustRender(t, div.Children("a").With(".c"))
	if got != `<div class="c">a</div>` {
		t.Errorf("attributes should keep children, got %q", got)
	}
}

func TestIdempotentRerender(t *testing.T) {
	page := div.With(".card").Children(
		p.Children("one"),
		func() Node { return span.Children("two") },
		seqOf(li.Children("x")),
	)
	first := mustRender(t, page)
	second := mustRender(t, page)
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
}

func TestDoctype(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"bare", html, "<!doctype html><html></html>"},
		{"with attributes", html.With(attrs.Lang("en")), `<!doctype html><html lang="en"></html>`},
		{"with children", html.With(attrs.Lang("en")).Children(div), `<!doctype html><html lang="en"><div></div></html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustRender(t, tt.node)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
			if strings.Count(got, "<!doctype html>") != 1 {
				t.Errorf("doctype should appear once: %q", got)
			}
		})
	}
}

func TestVoidElementRejectsChildren(t *testing.T) {
	e := img.Children("x")
	assertKind(t, e.Err(), errors.KindType)
	if !strings.Contains(e.Err().Error(), "img elements cannot have children") {
		t.Errorf("unexpected message: %v", e.Err())
	}

	_, err := Render(e, Values{})
	assertKind(t, err, errors.KindType)
}

func TestInvalidChildren(t *testing.T) {
	type point struct{ X, Y int }
	invalid := []struct {
		name  string
		value Node
		repr  string
	}{
		{"float", 1.5, "1.5"},
		{"bytes", []byte("foo"), `[]byte("foo")`},
		{"struct", point{1, 2}, "node.point{X:1, Y:2}"},
		{"map", map[string]int{"a": 1}, `map[string]int{"a":1}`},
	}

	for _, tt := range invalid {
		t.Run(tt.name+"/direct", func(t *testing.T) {
			e := div.Children(tt.value)
			assertKind(t, e.Err(), errors.KindType)
			want := tt.repr + " is not a valid child element"
			if !strings.Contains(e.Err().Error(), want) {
				t.Errorf("got %q, want it to contain %q", e.Err(), want)
			}
		})
		t.Run(tt.name+"/nested", func(t *testing.T) {
			e := div.Children([]Node{"ok", []Node{tt.value}})
			assertKind(t, e.Err(), errors.KindType)
		})
		t.Run(tt.name+"/thunk", func(t *testing.T) {
			e := div.Children(func() Node { return tt.value })
			if e.Err() != nil {
				t.Fatalf("lazy child should not be validated eagerly: %v", e.Err())
			}
			_, err := Render(e, Values{})
			assertKind(t, err, errors.KindType)
		})
		t.Run(tt.name+"/generator", func(t *testing.T) {
			_, err := Render(div.Children(Once(seqOf(tt.value))), Values{})
			assertKind(t, err, errors.KindType)
		})
	}
}

func TestConstructionErrorPropagatesToParent(t *testing.T) {
	bad := span.Children(2.5)
	parent := div.Children(p.Children(bad))
	assertKind(t, parent.Err(), errors.KindType)

	chunks, err := collect(IterChunks(parent, Values{}))
	if len(chunks) != 0 {
		t.Errorf("no chunk should be emitted before a construction error, got %q", chunks)
	}
	assertKind(t, err, errors.KindType)
}

func TestAttributeErrorRecorded(t *testing.T) {
	e := div.With(".a#b")
	assertKind(t, e.Err(), errors.KindValue)

	// Later calls keep the first error.
	e = e.With(attrs.ID("x")).Children("y")
	assertKind(t, e.Err(), errors.KindValue)

	_, err := Render(div.With("foo"), Values{})
	assertKind(t, err, errors.KindValue)

	_, err = Render(div.With(attrs.A("x", 1.5)), Values{})
	assertKind(t, err, errors.KindType)
}

func TestPartialOutputBeforeLazyError(t *testing.T) {
	n := div.Children("a", func() Node { return 1.5 })
	chunks, err := collect(IterChunks(n, Values{}))
	assertKind(t, err, errors.KindType)
	if strings.Join(chunks, "") != "<div>a" {
		t.Errorf("chunks before the error = %q", chunks)
	}
}

func TestThunkErrorIsWrapped(t *testing.T) {
	boom := errors.Newf(errors.KindRuntime, "boom")
	n := div.Children(func() (Node, error) { return nil, boom })
	_, err := Render(n, Values{})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "H033") {
		t.Errorf("err = %v", err)
	}
}

func TestIterChunksIsLazy(t *testing.T) {
	calls := 0
	n := div.Children(
		"a",
		func() Node { calls++; return "b" },
	)

	next := 0
	for chunk, err := range IterChunks(n, Values{}) {
		if err != nil {
			t.Fatal(err)
		}
		if chunk == "a" && calls != 0 {
			t.Errorf("thunk called before it was reached")
		}
		next++
		if next == 2 {
			break
		}
	}
	if calls != 0 {
		t.Errorf("thunk called %d times after early stop", calls)
	}

	if got := mustRender(t, n); got != "<div>ab</div>" {
		t.Errorf("got %q", got)
	}
	if calls != 1 {
		t.Errorf("thunk called %d times, want 1", calls)
	}
}

func TestChunks(t *testing.T) {
	chunks, err := collect(IterChunks(div.With(".x").Children("a", span.Children(1)), Values{}))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`<div class="x">`, "a", "<span>", "1", "</span>", "</div>"}
	if strings.Join(chunks, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", chunks, want)
	}
}

func TestBytesAndWriteTo(t *testing.T) {
	n := p.Children("é")
	b, err := n.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "<p>é</p>" {
		t.Errorf("Bytes() = %q", b)
	}

	var sb strings.Builder
	written, err := WriteTo(&sb, n, Values{})
	if err != nil {
		t.Fatal(err)
	}
	if written != int64(len(b)) || sb.String() != string(b) {
		t.Errorf("WriteTo wrote %d bytes: %q", written, sb.String())
	}

	if _, err := Bytes(div.Children(1.5), Values{}); err == nil {
		t.Error("expected error")
	}
}

func TestStringMethods(t *testing.T) {
	if got := div.Children("x").String(); got != "<div>x</div>" {
		t.Errorf("String() = %q", got)
	}
	if got := div.Children(1.5).String(); got != "" {
		t.Errorf("String() on failure = %q", got)
	}
}

func TestGoString(t *testing.T) {
	tests := []struct {
		node     *Element
		expected string
	}{
		{div.With(".x").Children("y"), `<Element '<div class="x">...</div>'>`},
		{img.With(attrs.Src("a")), `<VoidElement '<img src="a">'>`},
		{html, `<DocumentElement '<html>...</html>'>`},
	}
	for _, tt := range tests {
		if got := tt.node.GoString(); got != tt.expected {
			t.Errorf("GoString() = %q, want %q", got, tt.expected)
		}
	}
}

func TestConcurrentRenders(t *testing.T) {
	page := div.With(".x").Children(li.Children("a"), func() Node { return "b" })
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			s, _ := Render(page, Values{})
			done <- string(s)
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != `<div class="x"><li>a</li>b</div>` {
			t.Errorf("got %q", got)
		}
	}
}

func TestElementsAreHTMLers(t *testing.T) {
	bold := NewElement("b")
	var _ markup.HTMLer = bold
	var _ markup.HTMLer = Frag()

	got := mustRender(t, div.With(attrs.A("title", bold.Children("x"))))
	if want := `<div title="&lt;b&gt;x&lt;/b&gt;"></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if !markup.IsSafe(bold) {
		t.Error("IsSafe(element) = false")
	}
	if s, ok := markup.ToHTML(Frag("a", bold.Children("<"))); !ok || s != "a<b>&lt;</b>" {
		t.Errorf("ToHTML(fragment) = %q, %v", s, ok)
	}
}
