package component

import (
	"context"
	"html"
	"regexp"
	"slices"
	"strings"

	"github.com/goliatone/go-ctk/pkg/render"
)

// Text renders escaped text.
type Text struct {
	Base
	Value string
}

// NewText returns a Text component.
func NewText(value string) *Text {
	return &Text{Value: value}
}

func (t *Text) Render(context.Context) (render.Result, error) {
	return render.Markup(html.EscapeString(t.Value)), nil
}

// RawHTML renders its markup verbatim.
type RawHTML struct {
	Base
	Markup string
}

// NewRawHTML returns a RawHTML component.
func NewRawHTML(markup string) *RawHTML {
	return &RawHTML{Markup: markup}
}

func (r *RawHTML) Render(context.Context) (render.Result, error) {
	return render.Markup(r.Markup), nil
}

var (
	tagPattern  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
	attrPattern = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_.:-]*$`)
)

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {}, "wbr": {},
}

// Element wraps its children in an HTML tag. Attributes render in sorted
// key order.
type Element struct {
	Container
	Tag   string
	Attrs map[string]string
}

// NewElement builds an element and attaches children.
func NewElement(tag string, attrs map[string]string, children ...Component) (*Element, error) {
	el := &Element{Tag: tag, Attrs: attrs}
	if err := el.Add(children...); err != nil {
		return nil, err
	}
	return el, nil
}

// MustElement mirrors NewElement but panics on error.
func MustElement(tag string, attrs map[string]string, children ...Component) *Element {
	el, err := NewElement(tag, attrs, children...)
	if err != nil {
		panic(err)
	}
	return el
}

func (e *Element) Render(ctx context.Context) (render.Result, error) {
	tag := strings.ToLower(strings.TrimSpace(e.Tag))
	if !tagPattern.MatchString(tag) {
		return render.Result{}, render.Failf("element", "invalid tag %q", e.Tag)
	}

	var open strings.Builder
	open.WriteString("<")
	open.WriteString(tag)

	keys := make([]string, 0, len(e.Attrs))
	for key := range e.Attrs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if !attrPattern.MatchString(key) {
			return render.Result{}, render.Failf("element", "invalid attribute %q on <%s>", key, tag)
		}
		open.WriteString(" ")
		open.WriteString(key)
		open.WriteString(`="`)
		open.WriteString(html.EscapeString(e.Attrs[key]))
		open.WriteString(`"`)
	}

	if _, void := voidElements[tag]; void {
		if e.Len() > 0 {
			return render.Result{}, render.Failf("element", "void element <%s> cannot have children", tag)
		}
		open.WriteString(" />")
		return render.Markup(open.String()), nil
	}
	open.WriteString(">")

	inner, err := e.Container.Render(ctx)
	if err != nil {
		return render.Result{}, err
	}

	return render.Merge(
		render.Markup(open.String()),
		inner,
		render.Markup("</"+tag+">"),
	), nil
}
