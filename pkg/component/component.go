package component

import (
	"context"

	"github.com/goliatone/go-ctk/pkg/render"
)

// Component is the unit of composition. Render must depend only on the
// component's own state so repeated calls return identical results.
type Component interface {
	Render(ctx context.Context) (render.Result, error)
}

// Func adapts a function to Component. Func values carry no Base, so the
// ownership rules do not apply to them.
type Func func(ctx context.Context) (render.Result, error)

// Render calls f.
func (f Func) Render(ctx context.Context) (render.Result, error) {
	return f(ctx)
}

// Base tracks which Container owns a component. Embed it in custom
// components to opt into single-ownership checks.
type Base struct {
	owner *Container
}

// Owner returns the container this component is attached to, or nil.
func (b *Base) Owner() *Container {
	return b.owner
}

func (b *Base) base() *Base {
	return b
}

type owned interface {
	base() *Base
}

type containerNode interface {
	container() *Container
}
