// Package pongo adapts pongo2 templates to the page pipeline. Blueprints use
// Django syntax (`{{ head|safe }}`) and receive slot values as context
// variables.
package pongo

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-ctk/pkg/render"
	"github.com/goliatone/go-ctk/pkg/render/template"
)

// Option configures the Engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	globalData map[string]any
}

// WithBaseDir loads blueprints from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads blueprints from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default blueprint extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobalData seeds values visible to every blueprint.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine owns a pongo2 template set and caches compiled blueprints.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	inline    map[string]*pongo2.Template
	ext       string
}

// New builds an Engine. Without a base dir or fs the engine can still
// compile inline blueprints.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".html"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	if len(loaders) == 0 {
		loaders = append(loaders, pongo2.NewFSLoader(template.BlueprintsFS()))
	}

	engine := &Engine{
		set:       pongo2.NewSet("ctk", loaders...),
		templates: make(map[string]*pongo2.Template),
		inline:    make(map[string]*pongo2.Template),
		ext:       cfg.extension,
	}
	registerDefaultFilters()

	if len(cfg.globalData) > 0 {
		if engine.set.Globals == nil {
			engine.set.Globals = make(pongo2.Context)
		}
		engine.set.Globals.Update(pongo2.Context(cfg.globalData))
	}
	return engine, nil
}

// RenderString compiles content and executes it against data.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tpl, err := e.compile(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}
	out, err := tpl.Execute(cloneData(data))
	if err != nil {
		return "", fmt.Errorf("pongo: execute template string: %w", err)
	}
	return out, nil
}

// Blueprint loads the named blueprint file and returns a Filler for it.
// required lists slots that must be present when filling.
func (e *Engine) Blueprint(name string, required ...string) (*Blueprint, error) {
	if e == nil || e.set == nil {
		return nil, errors.New("pongo: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	tpl, err := e.load(path)
	if err != nil {
		return nil, err
	}
	return &Blueprint{name: path, tpl: tpl, required: required}, nil
}

// Inline compiles content as a blueprint.
func (e *Engine) Inline(content string, required ...string) (*Blueprint, error) {
	if e == nil || e.set == nil {
		return nil, errors.New("pongo: engine is nil")
	}
	tpl, err := e.compile(content)
	if err != nil {
		return nil, fmt.Errorf("pongo: parse blueprint: %w", err)
	}
	return &Blueprint{name: "inline", tpl: tpl, required: required}, nil
}

// compile returns the cached template for content. The template set is not
// safe for concurrent compilation, so every compile holds the write lock.
func (e *Engine) compile(content string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tpl, ok := e.inline[content]; ok {
		e.mu.RUnlock()
		return tpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.inline[content]; ok {
		return tpl, nil
	}
	tpl, err := e.set.FromString(content)
	if err != nil {
		return nil, err
	}
	e.inline[content] = tpl
	return tpl, nil
}

func (e *Engine) load(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.templates[path]; ok {
		return tpl, nil
	}
	tpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load blueprint %q: %w", path, err)
	}
	e.templates[path] = tpl
	return tpl, nil
}

// Blueprint is a compiled pongo2 page shell.
type Blueprint struct {
	name     string
	tpl      *pongo2.Template
	required []string
}

var _ template.Filler = (*Blueprint)(nil)

// Fill executes the blueprint with slots as context. Slots are plain strings;
// blueprints mark markup slots with the `safe` filter.
func (b *Blueprint) Fill(slots map[string]string) (string, error) {
	for _, name := range b.required {
		if _, ok := slots[name]; !ok {
			return "", &render.MissingSlotError{Slot: name}
		}
	}
	ctx := make(pongo2.Context, len(slots)+1)
	for key, value := range slots {
		ctx[key] = value
	}
	if _, ok := ctx[template.BodyProps]; !ok {
		ctx[template.BodyProps] = ""
	}
	out, err := b.tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: execute blueprint %q: %w", b.name, err)
	}
	return out, nil
}

// Required returns the slots Fill insists on.
func (b *Blueprint) Required() []string {
	return append([]string(nil), b.required...)
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// cloneData keeps caller maps out of the pongo2 context.
func cloneData(data map[string]any) pongo2.Context {
	return pongo2.Context(maps.Clone(data))
}
