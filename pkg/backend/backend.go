package backend

import (
	"net/http"
	"sort"
	"sync"

	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/node"
)

// ErrTemplateNotFound matches the error returned for an unregistered name.
var ErrTemplateNotFound error = &errors.Error{Code: "H082"}

// TemplateFunc builds the node for a template. The request may be nil when
// rendering outside of an HTTP handler.
type TemplateFunc func(r *http.Request, data map[string]any) node.Node

// Template is a resolved template.
type Template struct {
	name string
	fn   TemplateFunc
}

// Name returns the name the template was resolved from.
func (t *Template) Name() string { return t.name }

// Node builds the template's node without rendering it.
func (t *Template) Node(r *http.Request, data map[string]any) node.Node {
	return node.Frag(t.fn(r, data))
}

// Render renders the template to a string. Whatever the function returns
// (element, fragment, list of nodes) is rendered as a fragment.
func (t *Template) Render(r *http.Request, data map[string]any) (string, error) {
	s, err := node.Render(t.Node(r, data), node.Values{})
	return string(s), err
}

// Backend is a registry of named templates. It is safe for concurrent use.
type Backend struct {
	mu        sync.RWMutex
	templates map[string]TemplateFunc
}

// New returns an empty backend.
func New() *Backend {
	return &Backend{templates: make(map[string]TemplateFunc)}
}

// Register adds or replaces the template called name.
func (b *Backend) Register(name string, fn TemplateFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.templates[name] = fn
}

// Template resolves name.
func (b *Backend) Template(name string) (*Template, error) {
	b.mu.RLock()
	fn, ok := b.templates[name]
	b.mu.RUnlock()
	if !ok || fn == nil {
		return nil, errors.Errorf("H082", name)
	}
	return &Template{name: name, fn: fn}, nil
}

// Render resolves and renders name.
func (b *Backend) Render(name string, r *http.Request, data map[string]any) (string, error) {
	t, err := b.Template(name)
	if err != nil {
		return "", err
	}
	return t.Render(r, data)
}

// Names returns the registered template names, sorted.
func (b *Backend) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.templates))
	for name := range b.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the backend used by the package-level functions.
var Default = New()

// Register adds a template to the default backend.
func Register(name string, fn TemplateFunc) { Default.Register(name, fn) }

// Render renders a template of the default backend.
func Render(name string, r *http.Request, data map[string]any) (string, error) {
	return Default.Render(name, r, data)
}
