// Package watcher observes an inbox folder and keeps the archive store
// in step with it: newly scanned PDFs become documents, removed files
// drop out of the store.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/archive-cli/internal/core/domain"
	"github.com/custodia-labs/archive-cli/internal/core/services"
	"github.com/custodia-labs/archive-cli/internal/logger"
)

// Watcher feeds filesystem events from one folder into the store.
type Watcher struct {
	folder   string
	service  *services.DocumentService
	store    *services.ArchiveStore
	notifier *fsnotify.Watcher
	done     chan struct{}
}

// New creates a watcher over folder. Call Start to begin observing.
func New(folder string, service *services.DocumentService, store *services.ArchiveStore) (*Watcher, error) {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		folder:   folder,
		service:  service,
		store:    store,
		notifier: notifier,
		done:     make(chan struct{}),
	}, nil
}

// Start loads the PDFs already present in the folder, then observes it
// in a background goroutine until Close is called.
func (w *Watcher) Start() error {
	if err := w.scanExisting(); err != nil {
		return err
	}
	if err := w.notifier.Add(w.folder); err != nil {
		return fmt.Errorf("watching %s: %w", w.folder, err)
	}
	go w.loop()
	return nil
}

// Close stops observing. The watcher cannot be restarted.
func (w *Watcher) Close() error {
	close(w.done)
	return w.notifier.Close()
}

// scanExisting adds every archivable file already in the folder.
func (w *Watcher) scanExisting() error {
	entries, err := os.ReadDir(w.folder)
	if err != nil {
		return fmt.Errorf("reading %s: %w", w.folder, err)
	}
	var documents []*domain.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.folder, entry.Name())
		if !archivable(path) {
			continue
		}
		documents = append(documents, w.newDocument(path))
	}
	// One batch so a concurrent snapshot sees all or nothing.
	w.store.Add(documents...)
	logger.Info("Watching %s (%d existing documents)", w.folder, len(documents))
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.notifier.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.notifier.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

// handleEvent maps one filesystem event onto the store.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !archivable(event.Name) {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
			return
		}
		if w.store.GetByPath(event.Name) != nil {
			return
		}
		logger.Debug("New document %s", filepath.Base(event.Name))
		w.store.Add(w.newDocument(event.Name))

	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		if document := w.store.GetByPath(event.Name); document != nil {
			logger.Debug("Document %s disappeared", document.Filename())
			w.store.Remove(document)
		}
	}
}

func (w *Watcher) newDocument(path string) *domain.Document {
	var byteSize *int64
	if info, err := os.Stat(path); err == nil {
		size := info.Size()
		byteSize = &size
	}
	return w.service.CreateDocument(
		path,
		byteSize,
		domain.DownloadStatus{State: domain.DownloadStateLocal},
		domain.TaggingStatusUntagged,
	)
}

// archivable reports whether path is a visible PDF.
func archivable(path string) bool {
	if isHidden(path) {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// isHidden reports whether any path component starts with a dot.
func isHidden(path string) bool {
	for _, component := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(component, ".") && component != "." && component != ".." {
			return true
		}
	}
	return false
}
