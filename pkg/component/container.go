package component

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sourcegraph/conc/iter"

	"github.com/goliatone/go-ctk/pkg/render"
)

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithParallel renders children concurrently with at most limit goroutines
// (limit <= 0 uses GOMAXPROCS). Results are still merged in insertion order.
func WithParallel(limit int) ContainerOption {
	return func(c *Container) {
		c.parallel = true
		c.limit = max(limit, 0)
	}
}

// Container owns an ordered list of children.
type Container struct {
	Base

	children []Component
	parallel bool
	limit    int
	frozen   atomic.Bool
}

// NewContainer builds a container and attaches children in order.
func NewContainer(options []ContainerOption, children ...Component) (*Container, error) {
	c := &Container{}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	if err := c.Add(children...); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure applies options after construction. It has no effect once the
// container has rendered.
func (c *Container) Configure(options ...ContainerOption) {
	if c.frozen.Load() {
		return
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
}

func (c *Container) container() *Container {
	return c
}

// Add attaches children after the existing ones. Either every child is
// attached or none is.
func (c *Container) Add(children ...Component) error {
	if c.frozen.Load() {
		return render.Compositionf("container already rendered; children are frozen")
	}

	attached := make([]*Base, 0, len(children))
	rollback := func() {
		for _, b := range attached {
			b.owner = nil
		}
	}

	for idx, child := range children {
		if reason := c.attach(child); reason != "" {
			rollback()
			return render.Compositionf("child %d: %s", idx, reason)
		}
		if node, ok := child.(owned); ok {
			attached = append(attached, node.base())
		}
	}

	c.children = append(c.children, children...)
	return nil
}

// MustAdd mirrors Add but panics on error, simplifying static tree setup.
func (c *Container) MustAdd(children ...Component) *Container {
	if err := c.Add(children...); err != nil {
		panic(err)
	}
	return c
}

// attach claims child for c and returns a non-empty reason on refusal.
func (c *Container) attach(child Component) string {
	if child == nil {
		return "nil component"
	}
	if node, ok := child.(containerNode); ok {
		target := node.container()
		for ancestor := c; ancestor != nil; ancestor = ancestor.owner {
			if ancestor == target {
				return fmt.Sprintf("attaching %T would create a cycle", child)
			}
		}
	}
	node, ok := child.(owned)
	if !ok {
		return ""
	}
	b := node.base()
	if b.owner != nil {
		return fmt.Sprintf("%T is already a child of another container", child)
	}
	b.owner = c
	return ""
}

// Children returns a copy of the child list.
func (c *Container) Children() []Component {
	return append([]Component(nil), c.children...)
}

// Len reports the number of direct children.
func (c *Container) Len() int {
	return len(c.children)
}

// Render merges every child result in insertion order. The first child error
// is returned as is.
func (c *Container) Render(ctx context.Context) (render.Result, error) {
	c.frozen.Store(true)
	if err := ctx.Err(); err != nil {
		return render.Result{}, err
	}
	if c.parallel && len(c.children) > 1 {
		return c.renderParallel(ctx)
	}

	var b render.Builder
	for _, child := range c.children {
		result, err := child.Render(ctx)
		if err != nil {
			return render.Result{}, err
		}
		b.Add(result)
	}
	return b.Result(), nil
}

func (c *Container) renderParallel(ctx context.Context) (render.Result, error) {
	results := make([]render.Result, len(c.children))
	errs := make([]error, len(c.children))

	it := iter.Iterator[Component]{MaxGoroutines: c.limit}
	it.ForEachIdx(c.children, func(idx int, child *Component) {
		results[idx], errs[idx] = (*child).Render(ctx)
	})

	var b render.Builder
	for idx := range results {
		if errs[idx] != nil {
			return render.Result{}, errs[idx]
		}
		b.Add(results[idx])
	}
	return b.Result(), nil
}
