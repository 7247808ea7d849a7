// Package component provides the building blocks of a page tree. Every node
// satisfies Component; a Container renders its children in insertion order
// and merges their results, so a tree flattens depth-first, left to right.
//
// Components that embed Base (all built-in ones and every Container) are
// owned by at most one Container. Attaching one twice, attaching a container
// to itself or to one of its descendants, or adding to a container that has
// already rendered fails with a *render.CompositionError at Add time.
package component
