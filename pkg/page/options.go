package page

import (
	"log/slog"
	"unicode"

	"github.com/goliatone/go-ctk/pkg/component"
	"github.com/goliatone/go-ctk/pkg/postprocess"
	"github.com/goliatone/go-ctk/pkg/render"
	"github.com/goliatone/go-ctk/pkg/render/template"
)

// Option configures a Page.
type Option func(*config)

type config struct {
	base         []string
	template     template.Filler
	headers      []string
	helps        []render.HelpEntry
	bodyProps    *string
	processor    postprocess.Processor
	logger       *slog.Logger
	markdownHelp bool
	childOptions []component.ContainerOption
}

// WithTemplate replaces the default XHTML blueprint.
func WithTemplate(filler template.Filler) Option {
	return func(cfg *config) {
		if filler != nil {
			cfg.template = filler
		}
	}
}

// WithBaseHeaders replaces the boilerplate declarations. Passing none keeps
// the page head free of built-in headers.
func WithBaseHeaders(headers ...string) Option {
	return func(cfg *config) {
		cfg.base = append([]string{}, headers...)
	}
}

// WithHeaders adds page headers after the base set.
func WithHeaders(headers ...string) Option {
	return func(cfg *config) {
		cfg.headers = append(cfg.headers, headers...)
	}
}

// WithHelps adds page level help entries. They precede entries contributed by
// the tree.
func WithHelps(entries ...render.HelpEntry) Option {
	return func(cfg *config) {
		cfg.helps = append(cfg.helps, entries...)
	}
}

// WithBodyProps sets the attributes rendered inside the body tag, for
// example `onload="init()"`. A separating space is added when props does not
// already start with whitespace.
func WithBodyProps(props string) Option {
	return func(cfg *config) {
		if props != "" && !unicode.IsSpace(rune(props[0])) {
			props = " " + props
		}
		cfg.bodyProps = &props
	}
}

// WithPostprocessor replaces the default normalising chain.
func WithPostprocessor(processor postprocess.Processor) Option {
	return func(cfg *config) {
		if processor != nil {
			cfg.processor = processor
		}
	}
}

// WithLogger sets the logger used for non-fatal conditions such as duplicate
// help keys. A logger already present on the render context wins.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithParallel renders the page's direct children concurrently.
func WithParallel(limit int) Option {
	return func(cfg *config) {
		cfg.childOptions = append(cfg.childOptions, component.WithParallel(limit))
	}
}

// WithMarkdownHelp renders help text as Markdown before sanitizing it.
func WithMarkdownHelp() Option {
	return func(cfg *config) {
		cfg.markdownHelp = true
	}
}
