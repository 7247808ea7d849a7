package pagespec

import "github.com/goliatone/go-ctk/pkg/render"

// Document describes a complete page.
type Document struct {
	BaseHeaders []string           `yaml:"base_headers,omitempty" json:"base_headers,omitempty"`
	Headers     []string           `yaml:"headers,omitempty" json:"headers,omitempty"`
	Helps       []render.HelpEntry `yaml:"helps,omitempty" json:"helps,omitempty"`
	HelpFormat  string             `yaml:"help_format,omitempty" json:"help_format,omitempty"`
	BodyProps   *string            `yaml:"body_props,omitempty" json:"body_props,omitempty"`
	Parallel    *int               `yaml:"parallel,omitempty" json:"parallel,omitempty"`
	Template    *TemplateSpec      `yaml:"template,omitempty" json:"template,omitempty"`
	Body        []Node             `yaml:"body" json:"body"`

	// source names where the document came from, for error messages.
	source string
}

// Source returns the name the document was loaded from.
func (d Document) Source() string {
	return d.source
}

// Help text formats.
const (
	HelpFormatHTML     = "html"
	HelpFormatMarkdown = "markdown"
)

// Template engines understood by Build.
const (
	EnginePercent = "percent"
	EnginePongo   = "pongo"
)

// TemplateSpec selects the page blueprint. Exactly one of Blueprint or File
// may be set; neither keeps the default page shell.
type TemplateSpec struct {
	Engine    string            `yaml:"engine,omitempty" json:"engine,omitempty"`
	Blueprint string            `yaml:"blueprint,omitempty" json:"blueprint,omitempty"`
	File      string            `yaml:"file,omitempty" json:"file,omitempty"`
	Optional  []string          `yaml:"optional,omitempty" json:"optional,omitempty"`
	Required  []string          `yaml:"required,omitempty" json:"required,omitempty"`
	Slots     map[string]string `yaml:"slots,omitempty" json:"slots,omitempty"`
}

// Node is one component declaration. Fields beyond Kind are interpreted by
// the factory registered for that kind.
type Node struct {
	Kind     string            `yaml:"kind" json:"kind"`
	Tag      string            `yaml:"tag,omitempty" json:"tag,omitempty"`
	Text     string            `yaml:"text,omitempty" json:"text,omitempty"`
	HTML     string            `yaml:"html,omitempty" json:"html,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Values   []string          `yaml:"values,omitempty" json:"values,omitempty"`
	Source   string            `yaml:"source,omitempty" json:"source,omitempty"`
	Key      string            `yaml:"key,omitempty" json:"key,omitempty"`
	Data     map[string]any    `yaml:"data,omitempty" json:"data,omitempty"`
	Parallel *int              `yaml:"parallel,omitempty" json:"parallel,omitempty"`
	Children []Node            `yaml:"children,omitempty" json:"children,omitempty"`
}
