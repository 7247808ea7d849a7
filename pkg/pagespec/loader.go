package pagespec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load decodes a document from r. Unknown keys are rejected so typos surface
// instead of silently rendering an incomplete page.
func Load(r io.Reader, source string) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("pagespec: read %s: %w", source, err)
	}
	return parseDocument(data, source)
}

// LoadFile reads a document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("pagespec: read %s: %w", path, err)
	}
	return parseDocument(data, path)
}

// LoadFS reads the named document from fsys.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("pagespec: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("pagespec: read %s: %w", name, err)
	}
	return parseDocument(data, name)
}

// IsDocumentFile reports whether path has a document extension.
func IsDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, source string) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, fmt.Errorf("pagespec: file %s is empty", source)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("pagespec: parse %s: %w", source, err)
	}
	doc.source = source

	if err := validate(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func validate(doc Document) error {
	if tpl := doc.Template; tpl != nil {
		if tpl.Blueprint != "" && tpl.File != "" {
			return fmt.Errorf("pagespec: file %s template sets both blueprint and file", doc.source)
		}
		switch strings.ToLower(strings.TrimSpace(tpl.Engine)) {
		case "", EnginePercent, EnginePongo:
		default:
			return fmt.Errorf("pagespec: file %s template engine %q is not supported", doc.source, tpl.Engine)
		}
	}
	switch strings.ToLower(strings.TrimSpace(doc.HelpFormat)) {
	case "", HelpFormatHTML, HelpFormatMarkdown:
	default:
		return fmt.Errorf("pagespec: file %s help format %q is not supported", doc.source, doc.HelpFormat)
	}
	for idx, entry := range doc.Helps {
		if strings.TrimSpace(entry.Key) == "" {
			return fmt.Errorf("pagespec: file %s help entry %d has an empty key", doc.source, idx)
		}
	}
	return validateNodes(doc.Body, "body", doc.source)
}

func validateNodes(nodes []Node, path, source string) error {
	for idx, node := range nodes {
		nodePath := fmt.Sprintf("%s[%d]", path, idx)
		if strings.TrimSpace(node.Kind) == "" {
			return fmt.Errorf("pagespec: file %s node %s has no kind", source, nodePath)
		}
		if err := validateNodes(node.Children, nodePath+".children", source); err != nil {
			return err
		}
	}
	return nil
}
