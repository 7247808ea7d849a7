package pagespec

import (
	"fmt"

	"github.com/goliatone/go-ctk/pkg/component"
	"github.com/goliatone/go-ctk/pkg/render"
)

// Built-in node kinds.
const (
	KindText      = "text"
	KindHTML      = "html"
	KindElement   = "element"
	KindContainer = "container"
	KindHeader    = "header"
	KindScript    = "script"
	KindHelp      = "help"
	KindFragment  = "fragment"
)

// NewDefaultRegistry returns a registry with every built-in kind.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(KindText, textFactory)
	r.MustRegister(KindHTML, htmlFactory)
	r.MustRegister(KindElement, elementFactory)
	r.MustRegister(KindContainer, containerFactory)
	r.MustRegister(KindHeader, headerFactory)
	r.MustRegister(KindScript, scriptFactory)
	r.MustRegister(KindHelp, helpFactory)
	r.MustRegister(KindFragment, fragmentFactory)
	return r
}

func textFactory(_ *Builder, node Node, path string) (component.Component, error) {
	if err := noChildren(node, path); err != nil {
		return nil, err
	}
	return component.NewText(node.Text), nil
}

func htmlFactory(_ *Builder, node Node, path string) (component.Component, error) {
	if err := noChildren(node, path); err != nil {
		return nil, err
	}
	return component.NewRawHTML(node.HTML), nil
}

func elementFactory(b *Builder, node Node, path string) (component.Component, error) {
	if node.Tag == "" {
		return nil, fmt.Errorf("pagespec: node %s: element requires a tag", path)
	}
	children, err := b.Children(node, path)
	if err != nil {
		return nil, err
	}
	el, err := component.NewElement(node.Tag, node.Attrs, children...)
	if err != nil {
		return nil, fmt.Errorf("pagespec: node %s: %w", path, err)
	}
	if node.Parallel != nil {
		el.Configure(component.WithParallel(*node.Parallel))
	}
	return el, nil
}

func containerFactory(b *Builder, node Node, path string) (component.Component, error) {
	children, err := b.Children(node, path)
	if err != nil {
		return nil, err
	}
	var options []component.ContainerOption
	if node.Parallel != nil {
		options = append(options, component.WithParallel(*node.Parallel))
	}
	c, err := component.NewContainer(options, children...)
	if err != nil {
		return nil, fmt.Errorf("pagespec: node %s: %w", path, err)
	}
	return c, nil
}

func headerFactory(_ *Builder, node Node, path string) (component.Component, error) {
	if err := noChildren(node, path); err != nil {
		return nil, err
	}
	if len(node.Values) == 0 {
		return nil, fmt.Errorf("pagespec: node %s: header requires values", path)
	}
	return component.NewHeaders(node.Values...), nil
}

func scriptFactory(_ *Builder, node Node, path string) (component.Component, error) {
	if err := noChildren(node, path); err != nil {
		return nil, err
	}
	return component.NewScript(node.Source), nil
}

func helpFactory(_ *Builder, node Node, path string) (component.Component, error) {
	if err := noChildren(node, path); err != nil {
		return nil, err
	}
	if node.Key == "" {
		return nil, fmt.Errorf("pagespec: node %s: help requires a key", path)
	}
	return &component.Help{Entries: []render.HelpEntry{{Key: node.Key, Text: node.Text}}}, nil
}

func fragmentFactory(b *Builder, node Node, path string) (component.Component, error) {
	if err := noChildren(node, path); err != nil {
		return nil, err
	}
	engine, err := b.Engine()
	if err != nil {
		return nil, fmt.Errorf("pagespec: node %s: %w", path, err)
	}
	return component.NewFragment(engine, node.Source, node.Data), nil
}

func noChildren(node Node, path string) error {
	if len(node.Children) > 0 {
		return fmt.Errorf("pagespec: node %s: kind %q does not take children", path, node.Kind)
	}
	return nil
}
