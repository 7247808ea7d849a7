package pagespec

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-ctk/pkg/component"
)

// Factory turns a node into a component. path locates the node in the
// document for error messages; b builds nested children.
type Factory func(b *Builder, node Node, path string) (component.Component, error)

// Registry stores factories by kind. Kinds are case-insensitive.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. Duplicate kinds return an error.
func (r *Registry) Register(kind string, factory Factory) error {
	kind = normalizeKind(kind)
	if kind == "" {
		return fmt.Errorf("pagespec: factory kind is required")
	}
	if factory == nil {
		return fmt.Errorf("pagespec: factory for %q is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("pagespec: factory %q already registered", kind)
	}
	r.factories[kind] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Override replaces any factory registered for kind.
func (r *Registry) Override(kind string, factory Factory) {
	kind = normalizeKind(kind)
	if kind == "" || factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

// Get retrieves a factory by kind.
func (r *Registry) Get(kind string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[normalizeKind(kind)]
	return factory, ok
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for kind, factory := range r.factories {
		cloned.factories[kind] = factory
	}
	return cloned
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
