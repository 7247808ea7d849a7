package template

import (
	"embed"
	"io/fs"
)

//go:embed blueprints/*.html
var embeddedBlueprints embed.FS

const defaultPageBlueprint = "blueprints/page.html"

// BlueprintsFS exposes the embedded blueprint bundle.
func BlueprintsFS() fs.FS {
	sub, err := fs.Sub(embeddedBlueprints, "blueprints")
	if err != nil {
		return embeddedBlueprints
	}
	return sub
}

// DefaultPage returns a fresh Template over the built-in XHTML page shell.
func DefaultPage() *Template {
	data, err := fs.ReadFile(embeddedBlueprints, defaultPageBlueprint)
	if err != nil {
		// The blueprint is compiled in; a read failure means a broken build.
		panic("template: embedded page blueprint missing: " + err.Error())
	}
	return New(string(data))
}
