package attrs

import (
	"html/template"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/markup"
)

// Map is a positional mapping of attribute names to values. Names are used
// verbatim. Keys are applied in sorted order since Go maps are unordered.
type Map map[string]any

// Attr is a single keyword-style attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// A creates an Attr, normalizing name with HTMLName: A("hx_post", "/x")
// renders hx-post="/x" and A("for_", "email") renders for="email".
func A(name string, value any) Attr {
	return Attr{Key: HTMLName(name), Value: value}
}

// attr creates an Attr whose key is already a valid HTML name.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// HTMLName converts an identifier-style name to an attribute name. A single
// "_" is kept for hyperscript; one trailing underscore is dropped so names
// can dodge reserved words; remaining underscores become hyphens.
func HTMLName(name string) string {
	if name == "_" {
		return name
	}
	name = strings.TrimSuffix(name, "_")
	return strings.ReplaceAll(name, "_", "-")
}

type entry struct {
	name string
	frag string
}

// List is an immutable, ordered, serialized attribute set.
type List struct {
	entries []entry
	s       string
}

// String returns the attribute string with a leading space, or "" when empty.
func (l List) String() string { return l.s }

// Len returns the number of attributes.
func (l List) Len() int { return len(l.entries) }

// Names returns the attribute names in output order.
func (l List) Names() []string {
	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.name
	}
	return names
}

// pending collects one call's attributes: the first position of a name wins,
// the last value wins.
type pending struct {
	order  []string
	values map[string]any
}

func (p *pending) set(name string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[name]; !ok {
		p.order = append(p.order, name)
	}
	p.values[name] = value
}

// Merge applies args on top of prev and returns the new List. args may hold
// a leading shorthand string, Map (or map[string]any / map[string]string)
// values, Attr values and []Attr slices. prev is never modified.
func Merge(prev List, args ...any) (List, error) {
	var (
		short pending
		maps  pending
		kw    pending
	)

	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case string:
			if i != 0 {
				return prev, errors.Errorf("H013", strconv.Quote(v)).
					WithSuggestion("Only the first argument may be an id/class string.")
			}
			if v == "" {
				continue
			}
			id, hasID, classes, err := ParseShorthand(v)
			if err != nil {
				return prev, err
			}
			if hasID {
				short.set("id", id)
			}
			if len(classes) > 0 {
				short.set("class", strings.Join(classes, " "))
			}
		case Map:
			addMap(&maps, v)
		case map[string]any:
			addMap(&maps, v)
		case map[string]string:
			for _, k := range sortedKeys(v) {
				maps.set(k, v[k])
			}
		case map[any]any:
			keys := make([]string, 0, len(v))
			for k := range v {
				s, ok := k.(string)
				if !ok {
					return prev, errors.Errorf("H010", repr(k))
				}
				keys = append(keys, s)
			}
			sort.Strings(keys)
			for _, k := range keys {
				maps.set(k, v[k])
			}
		case Attr:
			if !v.IsEmpty() {
				kw.set(v.Key, v.Value)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					kw.set(a.Key, a.Value)
				}
			}
		default:
			return prev, errors.Errorf("H013", repr(arg))
		}
	}

	var all pending
	for _, p := range []*pending{&short, &maps, &kw} {
		for _, name := range p.order {
			all.set(name, p.values[name])
		}
	}
	if len(all.order) == 0 {
		return prev, nil
	}

	entries := make([]entry, len(prev.entries), len(prev.entries)+len(all.order))
	copy(entries, prev.entries)

	for _, name := range all.order {
		frag, keep, err := serialize(name, all.values[name])
		if err != nil {
			return prev, err
		}
		idx := -1
		for i := range entries {
			if entries[i].name == name {
				idx = i
				break
			}
		}
		switch {
		case idx >= 0 && keep:
			entries[idx].frag = frag
		case idx >= 0:
			entries = append(entries[:idx], entries[idx+1:]...)
		case keep:
			entries = append(entries, entry{name: name, frag: frag})
		}
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.frag)
	}
	return List{entries: entries, s: b.String()}, nil
}

// Build is Merge on an empty List.
func Build(args ...any) (List, error) {
	return Merge(List{}, args...)
}

func addMap(p *pending, m map[string]any) {
	for _, k := range sortedKeys(m) {
		p.set(k, m[k])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// serialize renders one attribute. keep is false when the attribute must be
// omitted.
func serialize(name string, value any) (frag string, keep bool, err error) {
	if value == nil {
		return "", false, nil
	}
	if b, ok := value.(bool); ok && !b {
		return "", false, nil
	}

	key := markup.Escape(name)

	if name == "class" {
		classes, ok, err := ClassNames(value)
		if err != nil || !ok {
			return "", false, err
		}
		return ` class="` + classes + `"`, true, nil
	}

	if value == true {
		return " " + key, true, nil
	}

	s, ok := Stringify(value)
	if !ok {
		return "", false, errors.Errorf("H011", repr(value))
	}
	return " " + key + `="` + markup.Escape(s) + `"`, true, nil
}

// Stringify returns the unescaped text form of an attribute value. Safe
// markup is returned as its raw text: attribute values are always escaped.
func Stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case markup.Safe:
		return string(v), true
	case template.HTML:
		return string(v), true
	case markup.HTMLer:
		return v.HTML(), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	}
	return "", false
}
