package attrs

import (
	"strings"
	"testing"

	"github.com/vango-dev/htgo/pkg/markup"
)

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func TestClassAttribute(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", `">foo bar`, ` class="&#34;&gt;foo bar"`},
		{"safe string is escaped", markup.Safe(`">foo bar`), ` class="&#34;&gt;foo bar"`},
		{"list", []any{`">foo`, markup.Safe(`">bar`), false, nil, "", "baz"}, ` class="&#34;&gt;foo &#34;&gt;bar baz"`},
		{"string slice", []string{"a", "", "b"}, ` class="a b"`},
		{"map", map[string]bool{`">foo`: true, "x": false, "baz": true}, ` class="&#34;&gt;foo baz"`},
		{"nested map", []any{"list-foo", map[string]bool{"dict-foo": true, "x": false}}, ` class="list-foo dict-foo"`},
		{"conditional tokens", []any{"foo", map[string]bool{"bar": true, "baz": false}}, ` class="foo bar"`},
		{"map any truthiness", map[string]any{"a": 1, "b": 0, "c": "", "d": "yes", "e": nil}, ` class="a d"`},
		{"nested slices", []any{[]any{"a", []string{"b"}}, "c"}, ` class="a b c"`},
		{"false", false, ""},
		{"nil", nil, ""},
		{"no classes", map[string]bool{"x": false}, ""},
		{"empty string", "", ""},
		{"empty list", []any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := build(t, A("class_", tt.value)); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClassHelpers(t *testing.T) {
	if got := build(t, Class("btn", map[string]bool{"active": true, "hidden": false})); got != ` class="btn active"` {
		t.Errorf("Class() = %q", got)
	}
	if got := build(t, ClassIf(false, "on")); got != "" {
		t.Errorf("ClassIf(false) = %q", got)
	}
	if got := build(t, ClassIf(true, "on")); got != ` class="on"` {
		t.Errorf("ClassIf(true) = %q", got)
	}
}

func TestHelpers(t *testing.T) {
	got := build(t, Data("user_id", 7), AriaHidden(true), Aria("expanded", false), Disabled(), Colspan(2))
	want := ` data-user-id="7" aria-hidden="true" aria-expanded="false" disabled colspan="2"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
