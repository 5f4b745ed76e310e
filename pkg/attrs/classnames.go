package attrs

import (
	"html/template"
	"strings"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/markup"
)

// ClassNames merges a classnames-style value into an escaped class string.
// Accepted inputs:
//
//	"a b"                                   used verbatim
//	[]string{"a", "", "b"}                  empty tokens skipped
//	map[string]bool{"active": on}           keys whose value is true, sorted
//	[]any{"a", nil, false, map[string]bool{}, []string{}}  mixed and nested
//
// ok is false when no class remains, which omits the attribute.
func ClassNames(v any) (classes string, ok bool, err error) {
	if s, isStr := classText(v); isStr {
		return markup.Escape(s), s != "", nil
	}

	var tokens []string
	if err := collectClasses(v, &tokens); err != nil {
		return "", false, err
	}
	if len(tokens) == 0 {
		return "", false, nil
	}
	for i, t := range tokens {
		tokens[i] = markup.Escape(t)
	}
	return strings.Join(tokens, " "), true, nil
}

func classText(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case markup.Safe:
		return string(v), true
	case template.HTML:
		return string(v), true
	}
	return "", false
}

func collectClasses(v any, tokens *[]string) error {
	switch v := v.(type) {
	case nil, bool:
		// nil and bare booleans contribute nothing
	case string, markup.Safe, template.HTML:
		if s, _ := classText(v); s != "" {
			*tokens = append(*tokens, s)
		}
	case []string:
		for _, s := range v {
			if s != "" {
				*tokens = append(*tokens, s)
			}
		}
	case map[string]bool:
		for _, k := range sortedKeys(v) {
			if v[k] {
				*tokens = append(*tokens, k)
			}
		}
	case map[string]any:
		for _, k := range sortedKeys(v) {
			if truthy(v[k]) {
				*tokens = append(*tokens, k)
			}
		}
	case []any:
		for _, item := range v {
			if err := collectClasses(item, tokens); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("H012", repr(v))
	}
	return nil
}

// truthy mirrors the conditional-class convention: nil, false, zero numbers
// and empty strings are off.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	}
	return true
}
