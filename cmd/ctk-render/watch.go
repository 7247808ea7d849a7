package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/goliatone/go-ctk/pkg/pagespec"
)

const watchDebounce = 100 * time.Millisecond

// watchDocument re-runs render whenever a document or blueprint in the
// document's directory changes. It returns when ctx is done. ignore is the
// output path, which must never trigger a render.
func watchDocument(ctx context.Context, path, ignore string, logger *slog.Logger, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ctk-render: create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("ctk-render: watch %s: %w", dir, err)
	}
	logger.Info("watching for changes", "dir", dir)

	ignored := ""
	if ignore != "" {
		ignored, _ = filepath.Abs(ignore)
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantChange(event, ignored) {
				continue
			}
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			if err := render(); err != nil {
				logger.Error("render failed", "error", err)
				continue
			}
			logger.Debug("re-rendered", "path", path)
		}
	}
}

func relevantChange(event fsnotify.Event, ignored string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	if ignored != "" {
		if abs, err := filepath.Abs(event.Name); err == nil && abs == ignored {
			return false
		}
	}
	if pagespec.IsDocumentFile(event.Name) {
		return true
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".html", ".htm", ".tpl":
		return true
	default:
		return false
	}
}
