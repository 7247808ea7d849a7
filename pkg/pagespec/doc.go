// Package pagespec loads declarative page documents (YAML or JSON) and builds
// page trees from them. Each node names a kind that resolves through a
// Registry of factories, so callers can plug their own components next to
// the built-in ones.
package pagespec
