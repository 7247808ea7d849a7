// Package ctk renders pages from trees of components. A Page collects markup,
// head declarations, client scripts and help topics from every component
// below it and assembles a single document. The helpers here cover the
// common entry points; the pkg/ packages expose the full API.
package ctk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-ctk/pkg/page"
	"github.com/goliatone/go-ctk/pkg/pagespec"
	"github.com/goliatone/go-ctk/pkg/render"
)

// HelpEntry aliases render.HelpEntry for callers configuring page help.
type HelpEntry = render.HelpEntry

// Result aliases render.Result.
type Result = render.Result

// NewPage exposes the page constructor from the top-level module.
func NewPage(options ...page.Option) *page.Page {
	return page.New(options...)
}

// RenderDocument loads a page document from disk, builds it and renders it.
// Template files referenced by the document resolve relative to its
// directory.
func RenderDocument(ctx context.Context, path string, options ...pagespec.BuildOption) (string, error) {
	doc, err := pagespec.LoadFile(path)
	if err != nil {
		return "", err
	}
	return renderDocument(ctx, doc, os.DirFS(filepath.Dir(path)), options...)
}

// RenderDocumentFS is RenderDocument over an fs.FS.
func RenderDocumentFS(ctx context.Context, fsys fs.FS, name string, options ...pagespec.BuildOption) (string, error) {
	doc, err := pagespec.LoadFS(fsys, name)
	if err != nil {
		return "", err
	}
	return renderDocument(ctx, doc, fsys, options...)
}

func renderDocument(ctx context.Context, doc pagespec.Document, fsys fs.FS, options ...pagespec.BuildOption) (string, error) {
	opts := append([]pagespec.BuildOption{pagespec.WithFS(fsys)}, options...)
	p, err := pagespec.Build(doc, opts...)
	if err != nil {
		return "", err
	}
	return p.Render(ctx)
}
