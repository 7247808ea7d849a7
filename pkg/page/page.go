package page

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/goliatone/go-ctk/internal/logging"
	"github.com/goliatone/go-ctk/pkg/component"
	"github.com/goliatone/go-ctk/pkg/help"
	"github.com/goliatone/go-ctk/pkg/postprocess"
	"github.com/goliatone/go-ctk/pkg/render"
	"github.com/goliatone/go-ctk/pkg/render/template"
)

// Slot names filled by Page.
const (
	SlotHead  = "head"
	SlotHTML  = "html"
	SlotJS    = "js"
	SlotBody  = "body"
	SlotHelps = "helps"
)

// Page is the root container of a document.
type Page struct {
	component.Container

	template  template.Filler
	headers   []string
	helps     []render.HelpEntry
	bodyProps *string
	processor postprocess.Processor
	logger    *slog.Logger
	menuOpts  []help.MenuOption
}

// New builds a page with the base headers, the default blueprint and the
// default postprocessor unless options override them.
func New(options ...Option) *Page {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.template == nil {
		cfg.template = template.DefaultPage()
	}
	if cfg.processor == nil {
		cfg.processor = postprocess.Default()
	}
	if cfg.base == nil {
		cfg.base = BaseHeaders()
	}

	p := &Page{
		template:  cfg.template,
		headers:   append(cfg.base, cfg.headers...),
		helps:     slices.Clone(cfg.helps),
		bodyProps: cfg.bodyProps,
		processor: cfg.processor,
		logger:    cfg.logger,
	}
	if cfg.markdownHelp {
		p.menuOpts = append(p.menuOpts, help.WithMarkdown())
	}
	p.Configure(cfg.childOptions...)
	return p
}

// AddHeaders appends page level headers.
func (p *Page) AddHeaders(headers ...string) {
	p.headers = append(p.headers, headers...)
}

// Headers returns the page level headers, base set included.
func (p *Page) Headers() []string {
	return slices.Clone(p.headers)
}

// Render produces the final document.
func (p *Page) Render(ctx context.Context) (string, error) {
	if p.logger != nil && logging.FromContext(ctx) == logging.Discard() {
		ctx = logging.WithLogger(ctx, p.logger)
	}

	tree, err := p.Container.Render(ctx)
	if err != nil {
		return "", err
	}

	headers := render.Unique(append(slices.Clone(p.headers), tree.Headers()...))
	head := strings.Join(headers, "\n")

	helps := append(slices.Clone(p.helps), tree.Helps()...)
	menu, err := help.NewMenu(helps, p.menuOpts...).Render(ctx)
	if err != nil {
		return "", fmt.Errorf("page: render help menu: %w", err)
	}
	helpsMarkup := menu.Markup()

	js := ReadyBlock(tree.Scripts())
	body := tree.Markup() + helpsMarkup + js

	slots := map[string]string{
		SlotHead:  head,
		SlotHTML:  tree.Markup(),
		SlotJS:    js,
		SlotBody:  body,
		SlotHelps: helpsMarkup,
	}
	if p.bodyProps != nil {
		slots[template.BodyProps] = *p.bodyProps
	}

	raw, err := p.template.Fill(slots)
	if err != nil {
		return "", fmt.Errorf("page: fill template: %w", err)
	}

	doc, err := p.processor.Process(raw)
	if err != nil {
		return "", fmt.Errorf("page: %w", err)
	}

	logging.FromContext(ctx).Debug("page: rendered",
		"headers", len(headers),
		"scripts", len(tree.Scripts()),
		"helps", len(helps),
		"bytes", len(doc),
	)
	return doc, nil
}
