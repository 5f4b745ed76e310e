package attrs

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/markup"
)

func build(t *testing.T, args ...any) string {
	t.Helper()
	l, err := Build(args...)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return l.String()
}

func TestHTMLName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"for_", "for"},
		{"class_", "class"},
		{"data_foo", "data-foo"},
		{"hx_post", "hx-post"},
		{"_", "_"},
		{"id", "id"},
		{"aria_label_", "aria-label"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HTMLName(tt.input); got != tt.expected {
				t.Errorf("HTMLName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		expected string
	}{
		{"empty", nil, ""},
		{"shorthand id and classes", []any{"#myid.cls1.cls2"}, ` id="myid" class="cls1 cls2"`},
		{"shorthand only id", []any{"#myid"}, ` id="myid"`},
		{"shorthand empty id", []any{"#", A("x", 1)}, ` id="" x="1"`},
		{"shorthand empty id and class", []any{"#.c"}, ` id="" class="c"`},
		{"shorthand only classes", []any{".foo.bar"}, ` class="foo bar"`},
		{"map", []any{Map{"@click": `hi = "hello"`}}, ` @click="hi = &#34;hello&#34;"`},
		{"map keys verbatim", []any{Map{"class_": "foo", "hello_hi": "abc"}}, ` class_="foo" hello_hi="abc"`},
		{"map false omitted", []any{Map{"bool-false": false}}, ""},
		{"map true is bare", []any{Map{"bool-true": true}}, ` bool-true`},
		{"map nil omitted", []any{Map{"foo": nil}}, ""},
		{"keyword normalized", []any{A("hx_post", "/foo")}, ` hx-post="/foo"`},
		{"hyperscript", []any{A("_", "on click")}, ` _="on click"`},
		{"boolean true", []any{A("disabled", true)}, ` disabled`},
		{"boolean false", []any{A("disabled", false)}, ""},
		{"integer", []any{A("colspan", 123)}, ` colspan="123"`},
		{"unsigned", []any{A("rows", uint8(3))}, ` rows="3"`},
		{"shorthand and keywords", []any{"#theid", A("for_", "hello"), A("data_foo", "<bar")}, ` id="theid" for="hello" data-foo="&lt;bar"`},
		{"attrs and keywords", []any{Map{"a": "1", "for": "a"}, A("for_", "b"), A("b", "2")}, ` a="1" for="b" b="2"`},
		{"class priority map", []any{".a", Map{"class": "b"}}, ` class="b"`},
		{"class priority keyword", []any{".a", Map{"class": "b"}, A("class_", "c")}, ` class="c"`},
		{"attribute priority", []any{Map{"foo": "a"}, A("foo", "b")}, ` foo="b"`},
		{"later maps override", []any{Map{"a": "1"}, Map{"a": "2", "b": "2"}, A("c", "3")}, ` a="2" b="2" c="3"`},
		{"keyword before map still wins", []any{A("a", "kw"), Map{"a": "map"}}, ` a="kw"`},
		{"attr slice", []any{[]Attr{Href("/x"), Target("_blank")}}, ` href="/x" target="_blank"`},
		{"empty attr skipped", []any{AttrIf(false, Disabled())}, ""},
		{"map string string", []any{map[string]string{"b": "2", "a": "1"}}, ` a="1" b="2"`},
		{"nil arg ignored", []any{nil, A("x", "y")}, ` x="y"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := build(t, tt.args...); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAttributeEscaping(t *testing.T) {
	for _, x := range []any{`<"foo`, markup.Safe(`<"foo`)} {
		got := build(t, Map{`<"foo`: x})
		if want := ` &lt;&#34;foo="&lt;&#34;foo"`; got != want {
			t.Errorf("map: got %q, want %q", got, want)
		}
		got = build(t, A(`<"foo`, x))
		if want := ` &lt;&#34;foo="&lt;&#34;foo"`; got != want {
			t.Errorf("keyword: got %q, want %q", got, want)
		}
	}
}

func TestMergeIsCumulative(t *testing.T) {
	first, err := Build(".a", A("title", "one"), A("disabled", true))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Merge(first, A("title", "two"), A("data_x", 1), A("disabled", false))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := second.String(), ` class="a" title="two" data-x="1"`; got != want {
		t.Errorf("merged = %q, want %q", got, want)
	}
	if got, want := first.String(), ` class="a" title="one" disabled`; got != want {
		t.Errorf("previous list was modified: %q, want %q", got, want)
	}
	if names := second.Names(); len(names) != 3 || names[0] != "class" {
		t.Errorf("Names() = %v", names)
	}
}

func TestMergeNoArgsReturnsPrevious(t *testing.T) {
	first, _ := Build(ID("x"))
	same, err := Merge(first)
	if err != nil || same.String() != first.String() {
		t.Errorf("Merge() = %q, %v", same.String(), err)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
		kind errors.Kind
		code string
	}{
		{"id after class", []any{".myclass#myid"}, errors.KindValue, "H021"},
		{"no prefix", []any{"foo"}, errors.KindValue, "H020"},
		{"two ids", []any{"#a#b"}, errors.KindValue, "H022"},
		{"string in second position", []any{Map{}, ".x"}, errors.KindType, "H013"},
		{"non string key", []any{map[any]any{1234: "foo"}}, errors.KindType, "H010"},
		{"float value", []any{A("foo", 12.34)}, errors.KindType, "H011"},
		{"bytes value", []any{A("foo", []byte("foo"))}, errors.KindType, "H011"},
		{"struct value", []any{A("foo", struct{}{})}, errors.KindType, "H011"},
		{"unknown argument", []any{42}, errors.KindType, "H013"},
		{"bad class value", []any{A("class", 1.5)}, errors.KindType, "H012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, &errors.Error{Kind: tt.kind}) {
				t.Errorf("error %v is not of kind %s", err, tt.kind)
			}
			if !stderrors.Is(err, &errors.Error{Code: tt.code}) {
				t.Errorf("error %v does not have code %s", err, tt.code)
			}
		})
	}
}

func TestShorthandErrorMessages(t *testing.T) {
	_, _, _, err := ParseShorthand(".myclass#myid")
	if err == nil || !containsAll(err.Error(), "id (#) must be specified before classes (.)") {
		t.Errorf("err = %v", err)
	}
	_, _, _, err = ParseShorthand("foo")
	if err == nil || !containsAll(err.Error(), "id/class strings must start with # or .") {
		t.Errorf("err = %v", err)
	}
}

func TestParseShorthandTrimsParts(t *testing.T) {
	id, hasID, classes, err := ParseShorthand("# main . a .. b")
	if err != nil {
		t.Fatal(err)
	}
	if !hasID || id != "main" {
		t.Errorf("id = %q", id)
	}
	if len(classes) != 2 || classes[0] != "a" || classes[1] != "b" {
		t.Errorf("classes = %q", classes)
	}
}

func TestParseShorthandEmptyID(t *testing.T) {
	for _, s := range []string{"#", "#.c", "# .c"} {
		id, hasID, _, err := ParseShorthand(s)
		if err != nil {
			t.Fatalf("ParseShorthand(%q): %v", s, err)
		}
		if !hasID || id != "" {
			t.Errorf("ParseShorthand(%q) = %q, %v", s, id, hasID)
		}
	}
	if _, hasID, _, _ := ParseShorthand(".c"); hasID {
		t.Error("ParseShorthand(.c) reported an id")
	}
}
