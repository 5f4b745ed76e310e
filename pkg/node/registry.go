package node

import (
	"container/list"
	"sync"
	"unicode"

	"golang.org/x/net/html/atom"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/attrs"
)

// DefaultRegistrySize is the capacity of the package-level tag registry.
const DefaultRegistrySize = 300

var voidTags = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true, atom.Embed: true,
	atom.Hr: true, atom.Img: true, atom.Input: true, atom.Link: true, atom.Meta: true,
	atom.Param: true, atom.Source: true, atom.Track: true, atom.Wbr: true,
}

// IsVoidTag reports whether name is a void element.
func IsVoidTag(name string) bool { return voidTags[atom.Lookup([]byte(name))] }

// IsKnownTag reports whether name is a tag or attribute name known to the
// HTML5 atom table.
func IsKnownTag(name string) bool {
	return atom.Lookup([]byte(name)) != 0
}

// newTagElement builds the element for a normalized tag name. Names outside
// the atom table are custom elements and always take children.
func newTagElement(tag string) *Element {
	switch a := atom.Lookup([]byte(tag)); {
	case a == 0:
		return NewElement(tag)
	case voidTags[a]:
		return NewVoidElement(tag)
	case a == atom.Html:
		return NewDocumentElement(tag)
	default:
		return NewElement(tag)
	}
}

// Registry creates and caches elements for tag names that have no
// package-level value, such as custom elements. Least recently used entries
// are evicted once the registry is full.
type Registry struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recent
}

type registryItem struct {
	key string
	el  *Element
}

// NewRegistry creates a registry holding at most capacity elements.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultRegistrySize
	}
	return &Registry{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

var defaultRegistry = NewRegistry(DefaultRegistrySize)

// Tag returns the element for name from the package-level registry.
func Tag(name string) (*Element, error) {
	return defaultRegistry.Tag(name)
}

// Tag returns the element for name. name must be lowercase; underscores
// become hyphens and one trailing underscore is dropped, so "my_widget"
// yields <my-widget>.
func (r *Registry) Tag(name string) (*Element, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if elem, ok := r.entries[name]; ok {
		r.order.MoveToFront(elem)
		return elem.Value.(*registryItem).el, nil
	}

	if !isLower(name) {
		return nil, errors.Errorf("H050", name)
	}

	el := newTagElement(attrs.HTMLName(name))

	for r.order.Len() >= r.capacity {
		oldest := r.order.Back()
		if oldest == nil {
			break
		}
		r.order.Remove(oldest)
		delete(r.entries, oldest.Value.(*registryItem).key)
	}
	r.entries[name] = r.order.PushFront(&registryItem{key: name, el: el})
	return el, nil
}

// Len returns the number of cached elements.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

// isLower reports whether s has at least one cased letter and no upper case
// letters.
func isLower(s string) bool {
	cased := false
	for _, c := range s {
		if unicode.IsUpper(c) || unicode.IsTitle(c) {
			return false
		}
		if unicode.IsLower(c) {
			cased = true
		}
	}
	return cased
}
