package component

import (
	"context"
	"maps"

	"github.com/goliatone/go-ctk/pkg/render"
)

// StringRenderer executes inline template source against data. The pongo
// engine satisfies it.
type StringRenderer interface {
	RenderString(content string, data map[string]any) (string, error)
}

// Fragment renders a template snippet as markup.
type Fragment struct {
	Base
	Engine StringRenderer
	Source string
	Data   map[string]any
}

// NewFragment returns a Fragment bound to engine. data is copied.
func NewFragment(engine StringRenderer, source string, data map[string]any) *Fragment {
	return &Fragment{Engine: engine, Source: source, Data: maps.Clone(data)}
}

func (f *Fragment) Render(context.Context) (render.Result, error) {
	if f.Engine == nil {
		return render.Result{}, render.Failf("fragment", "template engine is nil")
	}
	out, err := f.Engine.RenderString(f.Source, f.Data)
	if err != nil {
		return render.Result{}, &render.RenderError{Component: "fragment", Err: err}
	}
	return render.Markup(out), nil
}
