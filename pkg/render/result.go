package render

import "slices"

// HelpEntry identifies a help topic and the text shown for it. Entries are
// opaque to containers; only the help menu interprets them.
type HelpEntry struct {
	Key  string `yaml:"key" json:"key"`
	Text string `yaml:"text" json:"text"`
}

// Result is the immutable output of a render call. The zero value is an
// empty result.
type Result struct {
	markup  string
	headers []string
	scripts []string
	helps   []HelpEntry
}

// Markup returns a result carrying only markup.
func Markup(markup string) Result {
	return Result{markup: markup}
}

// Markup returns the rendered markup.
func (r Result) Markup() string {
	return r.markup
}

// Headers returns a copy of the header declarations in contribution order.
// Duplicates are preserved; the page removes them.
func (r Result) Headers() []string {
	return slices.Clone(r.headers)
}

// Scripts returns a copy of the client script snippets in contribution order.
func (r Result) Scripts() []string {
	return slices.Clone(r.scripts)
}

// Helps returns a copy of the help entries in contribution order.
func (r Result) Helps() []HelpEntry {
	return slices.Clone(r.helps)
}

// Empty reports whether the result carries nothing at all.
func (r Result) Empty() bool {
	return r.markup == "" && len(r.headers) == 0 && len(r.scripts) == 0 && len(r.helps) == 0
}

// WithMarkup returns a copy of r with markup appended.
func (r Result) WithMarkup(markup string) Result {
	out := r.clone()
	out.markup += markup
	return out
}

// WithHeaders returns a copy of r with headers appended.
func (r Result) WithHeaders(headers ...string) Result {
	out := r.clone()
	out.headers = append(out.headers, headers...)
	return out
}

// WithScripts returns a copy of r with script snippets appended.
func (r Result) WithScripts(scripts ...string) Result {
	out := r.clone()
	out.scripts = append(out.scripts, scripts...)
	return out
}

// WithHelp returns a copy of r with help entries appended.
func (r Result) WithHelp(entries ...HelpEntry) Result {
	out := r.clone()
	out.helps = append(out.helps, entries...)
	return out
}

// Append returns the field-wise concatenation of r followed by other.
func (r Result) Append(other Result) Result {
	return Merge(r, other)
}

func (r Result) clone() Result {
	return Result{
		markup:  r.markup,
		headers: slices.Clone(r.headers),
		scripts: slices.Clone(r.scripts),
		helps:   slices.Clone(r.helps),
	}
}

// Merge concatenates every field of results in argument order.
func Merge(results ...Result) Result {
	var b Builder
	for _, result := range results {
		b.Add(result)
	}
	return b.Result()
}

// Builder accumulates results without copying after every step. The zero
// value is ready to use. A Builder must not be copied after first use.
type Builder struct {
	markup  []byte
	headers []string
	scripts []string
	helps   []HelpEntry
}

// Add appends result to the builder.
func (b *Builder) Add(result Result) {
	b.markup = append(b.markup, result.markup...)
	b.headers = append(b.headers, result.headers...)
	b.scripts = append(b.scripts, result.scripts...)
	b.helps = append(b.helps, result.helps...)
}

// Result snapshots the accumulated fields into an immutable Result.
func (b *Builder) Result() Result {
	return Result{
		markup:  string(b.markup),
		headers: slices.Clone(b.headers),
		scripts: slices.Clone(b.scripts),
		helps:   slices.Clone(b.helps),
	}
}

// Unique removes exact duplicates from seq keeping the first occurrence of
// each value in its original position.
func Unique(seq []string) []string {
	if len(seq) == 0 {
		return nil
	}
	out := make([]string, 0, len(seq))
	seen := make(map[string]struct{}, len(seq))
	for _, value := range seq {
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
