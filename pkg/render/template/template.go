package template

import (
	"maps"
	"strings"

	"github.com/goliatone/go-ctk/pkg/render"
)

// BodyProps is the one slot a page may leave unset.
const BodyProps = "body_props"

// Filler produces a document from a set of slot values. Page depends on this
// seam so callers can swap the blueprint engine.
type Filler interface {
	Fill(slots map[string]string) (string, error)
}

// Option configures a Template at construction.
type Option func(*Template)

// WithOptional marks additional slots that render as an empty string when
// unset.
func WithOptional(names ...string) Option {
	return func(t *Template) {
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				t.optional[name] = struct{}{}
			}
		}
	}
}

// WithSlots seeds slot values.
func WithSlots(slots map[string]string) Option {
	return func(t *Template) {
		maps.Copy(t.slots, slots)
	}
}

// Template pairs a `%(name)s` blueprint with its slot values. A Template is
// not safe for concurrent mutation; Fill works on a private copy.
type Template struct {
	blueprint string
	slots     map[string]string
	optional  map[string]struct{}
}

var _ Filler = (*Template)(nil)

// New parses nothing up front; placeholders are resolved at render time.
func New(blueprint string, options ...Option) *Template {
	t := &Template{
		blueprint: blueprint,
		slots:     make(map[string]string),
		optional:  map[string]struct{}{BodyProps: {}},
	}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Blueprint returns the raw blueprint text.
func (t *Template) Blueprint() string {
	return t.blueprint
}

// Set stores value under name, replacing any previous value.
func (t *Template) Set(name, value string) {
	t.slots[name] = value
}

// Get returns the value stored for name.
func (t *Template) Get(name string) (string, bool) {
	value, ok := t.slots[name]
	return value, ok
}

// Clone returns an independent copy of the template and its slots.
func (t *Template) Clone() *Template {
	return &Template{
		blueprint: t.blueprint,
		slots:     maps.Clone(t.slots),
		optional:  maps.Clone(t.optional),
	}
}

// Slots lists the placeholders referenced by the blueprint.
func (t *Template) Slots() []string {
	return Slots(t.blueprint)
}

// Render substitutes every placeholder. A referenced slot that was never set
// fails with *render.MissingSlotError unless it is optional.
func (t *Template) Render() (string, error) {
	var out strings.Builder
	out.Grow(len(t.blueprint))

	err := scan(t.blueprint, func(literal string) {
		out.WriteString(literal)
	}, func(name string) error {
		value, ok := t.slots[name]
		if !ok {
			if _, optional := t.optional[name]; !optional {
				return &render.MissingSlotError{Slot: name}
			}
		}
		out.WriteString(value)
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Fill renders a copy of the template with slots layered over the values
// already stored. The receiver is left untouched.
func (t *Template) Fill(slots map[string]string) (string, error) {
	clone := t.Clone()
	maps.Copy(clone.slots, slots)
	return clone.Render()
}
