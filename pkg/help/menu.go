// Package help renders the contextual help widget shown on every page.
// Entries are deduplicated by exact key in first-seen order; a repeated key
// keeps its first text and the duplicate is logged, never treated as an
// error.
package help

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-ctk/internal/logging"
	"github.com/goliatone/go-ctk/pkg/render"
)

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithMarkdown treats entry text as Markdown. The converted HTML still goes
// through the sanitizer.
func WithMarkdown() MenuOption {
	return func(m *Menu) {
		m.markdown = true
	}
}

// Menu is the help widget over an ordered list of entries.
type Menu struct {
	entries  []render.HelpEntry
	markdown bool
}

// NewMenu copies entries into a Menu.
func NewMenu(entries []render.HelpEntry, options ...MenuOption) *Menu {
	m := &Menu{entries: append([]render.HelpEntry(nil), entries...)}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Entries returns the deduplicated topics without logging.
func (m *Menu) Entries() []render.HelpEntry {
	return dedupe(context.Background(), m.entries, false)
}

// Render returns markup only. An empty menu renders nothing.
func (m *Menu) Render(ctx context.Context) (render.Result, error) {
	entries := dedupe(ctx, m.entries, true)
	if len(entries) == 0 {
		return render.Result{}, nil
	}

	ids := map[string]struct{}{"help-menu": {}}
	var b strings.Builder
	b.WriteString(`<div id="help-menu" class="help">`)
	b.WriteString("\n <ul class=\"help-topics\">\n")
	for _, entry := range entries {
		key := html.EscapeString(entry.Key)
		id := anchorID(entry.Key, ids)
		b.WriteString(`  <li class="help-topic" data-help-key="`)
		b.WriteString(key)
		b.WriteString(`"><a href="#`)
		b.WriteString(id)
		b.WriteString(`" class="help-key">`)
		b.WriteString(key)
		b.WriteString(`</a><div class="help-text" id="`)
		b.WriteString(id)
		b.WriteString(`">`)
		text, err := m.text(entry)
		if err != nil {
			return render.Result{}, err
		}
		b.WriteString(text)
		b.WriteString("</div></li>\n")
	}
	b.WriteString(" </ul>\n</div>\n")
	return render.Markup(b.String()), nil
}

func (m *Menu) text(entry render.HelpEntry) (string, error) {
	if !m.markdown {
		return sanitizeText(entry.Text), nil
	}
	converted, err := markdownToHTML(entry.Text)
	if err != nil {
		return "", &render.RenderError{Component: "help " + entry.Key, Err: err}
	}
	return sanitizeText(converted), nil
}

func dedupe(ctx context.Context, entries []render.HelpEntry, report bool) []render.HelpEntry {
	logger := logging.FromContext(ctx)
	out := make([]render.HelpEntry, 0, len(entries))
	seen := make(map[string]int, len(entries))

	for _, entry := range entries {
		if strings.TrimSpace(entry.Key) == "" {
			if report {
				logger.Warn("help: skipping entry without key", "text", entry.Text)
			}
			continue
		}
		if first, exists := seen[entry.Key]; exists {
			if report {
				logger.Debug("help: duplicate key ignored",
					"key", entry.Key,
					"kept", out[first].Text,
					"dropped", entry.Text,
				)
			}
			continue
		}
		seen[entry.Key] = len(out)
		out = append(out, entry)
	}
	return out
}

// anchorID derives the element id for key: "help-" followed by the key with
// every run of characters outside [A-Za-z0-9_-] replaced by a single dash.
// Keys that map to an id already taken get a numeric suffix.
func anchorID(key string, taken map[string]struct{}) string {
	var b strings.Builder
	b.WriteString("help-")
	dash := true
	for _, r := range key {
		switch {
		case r == '_', r == '-', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	id := strings.TrimRight(b.String(), "-")
	if id == "help" {
		id = "help-topic"
	}
	candidate := id
	for n := 2; ; n++ {
		if _, exists := taken[candidate]; !exists {
			break
		}
		candidate = fmt.Sprintf("%s-%d", id, n)
	}
	taken[candidate] = struct{}{}
	return candidate
}
