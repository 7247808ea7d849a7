package component

import (
	"context"

	"github.com/goliatone/go-ctk/pkg/render"
)

// Headers contributes head declarations without markup.
type Headers struct {
	Base
	Values []string
}

// NewHeaders returns a Headers component.
func NewHeaders(values ...string) *Headers {
	return &Headers{Values: values}
}

func (h *Headers) Render(context.Context) (render.Result, error) {
	return render.Result{}.WithHeaders(h.Values...), nil
}

// Script contributes a client snippet that the page runs once the document
// is ready.
type Script struct {
	Base
	Source string
}

// NewScript returns a Script component.
func NewScript(source string) *Script {
	return &Script{Source: source}
}

func (s *Script) Render(context.Context) (render.Result, error) {
	if s.Source == "" {
		return render.Result{}, nil
	}
	return render.Result{}.WithScripts(s.Source), nil
}

// Help registers help topics for the page menu.
type Help struct {
	Base
	Entries []render.HelpEntry
}

// NewHelp returns a Help component for a single topic.
func NewHelp(key, text string) *Help {
	return &Help{Entries: []render.HelpEntry{{Key: key, Text: text}}}
}

func (h *Help) Render(context.Context) (render.Result, error) {
	return render.Result{}.WithHelp(h.Entries...), nil
}
