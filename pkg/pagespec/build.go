package pagespec

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-ctk/pkg/component"
	"github.com/goliatone/go-ctk/pkg/page"
	"github.com/goliatone/go-ctk/pkg/render/template"
	"github.com/goliatone/go-ctk/pkg/render/template/pongo"
)

// BuildOption configures Build.
type BuildOption func(*Builder)

// WithRegistry replaces the default factory registry.
func WithRegistry(registry *Registry) BuildOption {
	return func(b *Builder) {
		if registry != nil {
			b.registry = registry
		}
	}
}

// WithFS resolves template files against fsys.
func WithFS(fsys fs.FS) BuildOption {
	return func(b *Builder) {
		b.files = fsys
	}
}

// WithEngine shares a pongo engine across builds.
func WithEngine(engine *pongo.Engine) BuildOption {
	return func(b *Builder) {
		if engine != nil {
			b.engine = engine
		}
	}
}

// WithPageOptions appends page options after the ones derived from the
// document, so they take precedence.
func WithPageOptions(options ...page.Option) BuildOption {
	return func(b *Builder) {
		b.pageOptions = append(b.pageOptions, options...)
	}
}

// Builder turns documents into pages. Factories receive it to build nested
// children and to share the template engine.
type Builder struct {
	registry    *Registry
	files       fs.FS
	engine      *pongo.Engine
	pageOptions []page.Option
}

// NewBuilder applies options over the default registry.
func NewBuilder(options ...BuildOption) *Builder {
	b := &Builder{registry: NewDefaultRegistry()}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build is shorthand for NewBuilder(options...).Page(doc).
func Build(doc Document, options ...BuildOption) (*page.Page, error) {
	return NewBuilder(options...).Page(doc)
}

// Engine returns the shared pongo engine, creating it on first use.
func (b *Builder) Engine() (*pongo.Engine, error) {
	if b.engine != nil {
		return b.engine, nil
	}
	var opts []pongo.Option
	if b.files != nil {
		opts = append(opts, pongo.WithFS(b.files))
	}
	engine, err := pongo.New(opts...)
	if err != nil {
		return nil, err
	}
	b.engine = engine
	return engine, nil
}

// Node builds a single node through the registry.
func (b *Builder) Node(node Node, path string) (component.Component, error) {
	factory, ok := b.registry.Get(node.Kind)
	if !ok {
		return nil, fmt.Errorf("pagespec: node %s: unknown kind %q", path, node.Kind)
	}
	return factory(b, node, path)
}

// Children builds node's children in order.
func (b *Builder) Children(node Node, path string) ([]component.Component, error) {
	return b.nodes(node.Children, path+".children")
}

func (b *Builder) nodes(nodes []Node, path string) ([]component.Component, error) {
	out := make([]component.Component, 0, len(nodes))
	for idx, node := range nodes {
		built, err := b.Node(node, fmt.Sprintf("%s[%d]", path, idx))
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}

// Page builds the document's page.
func (b *Builder) Page(doc Document) (*page.Page, error) {
	var options []page.Option
	if doc.BaseHeaders != nil {
		options = append(options, page.WithBaseHeaders(doc.BaseHeaders...))
	}
	options = append(options, page.WithHeaders(doc.Headers...), page.WithHelps(doc.Helps...))
	if strings.EqualFold(strings.TrimSpace(doc.HelpFormat), HelpFormatMarkdown) {
		options = append(options, page.WithMarkdownHelp())
	}
	if doc.BodyProps != nil {
		options = append(options, page.WithBodyProps(*doc.BodyProps))
	}
	if doc.Parallel != nil {
		options = append(options, page.WithParallel(*doc.Parallel))
	}
	if doc.Template != nil {
		filler, err := b.template(*doc.Template)
		if err != nil {
			return nil, fmt.Errorf("pagespec: %s: %w", doc.source, err)
		}
		options = append(options, page.WithTemplate(filler))
	}
	options = append(options, b.pageOptions...)

	children, err := b.nodes(doc.Body, "body")
	if err != nil {
		return nil, err
	}

	p := page.New(options...)
	if err := p.Add(children...); err != nil {
		return nil, fmt.Errorf("pagespec: %s: %w", doc.source, err)
	}
	return p, nil
}

func (b *Builder) template(spec TemplateSpec) (template.Filler, error) {
	engine := strings.ToLower(strings.TrimSpace(spec.Engine))

	if engine == EnginePongo {
		e, err := b.Engine()
		if err != nil {
			return nil, err
		}
		if spec.File != "" {
			return e.Blueprint(spec.File, spec.Required...)
		}
		if spec.Blueprint == "" {
			return nil, errors.New("pongo template requires a blueprint or file")
		}
		return e.Inline(spec.Blueprint, spec.Required...)
	}

	blueprint := spec.Blueprint
	if spec.File != "" {
		if b.files == nil {
			return nil, fmt.Errorf("template file %q needs a filesystem", spec.File)
		}
		data, err := fs.ReadFile(b.files, spec.File)
		if err != nil {
			return nil, fmt.Errorf("read template %q: %w", spec.File, err)
		}
		blueprint = string(data)
	}
	if blueprint == "" {
		blueprint = template.DefaultPage().Blueprint()
	}
	return template.New(blueprint, template.WithOptional(spec.Optional...), template.WithSlots(spec.Slots)), nil
}
