package help

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownOnce   sync.Once
	markdownEngine goldmark.Markdown
)

func markdownConverter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownEngine = goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
			),
		)
	})
	return markdownEngine
}

// markdownToHTML converts help text written in Markdown. Raw HTML in the
// source is dropped by goldmark's default renderer.
func markdownToHTML(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("help: convert markdown: %w", err)
	}
	return buf.String(), nil
}
