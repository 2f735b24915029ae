package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/archive-cli/internal/core/domain"
	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
	"github.com/custodia-labs/archive-cli/internal/logger"
)

// SlugSeparator joins slug words in archived specifications.
const SlugSeparator = "-"

// DocumentService runs the document workflows: construction from a file
// on disk, OCR-style content parsing, and renaming into the archive.
//
// The service holds no state of its own; it is safe for concurrent use
// as long as callers follow the single-owner discipline for each
// document (see domain.Document).
type DocumentService struct {
	files      driven.FileManager
	tagStore   driven.TagStore
	extractor  driven.ContentExtractor
	recogniser driven.TagRecogniser
}

// NewDocumentService creates a document service. files is required; the
// tagStore, extractor and recogniser parameters are optional (can be
// nil) and disable their workflow step when absent.
func NewDocumentService(
	files driven.FileManager,
	tagStore driven.TagStore,
	extractor driven.ContentExtractor,
	recogniser driven.TagRecogniser,
) *DocumentService {
	return &DocumentService{
		files:      files,
		tagStore:   tagStore,
		extractor:  extractor,
		recogniser: recogniser,
	}
}

// CreateDocument constructs a document for the file at path, minting a
// fresh ID and unioning any tags the tag store already records for the
// file into the parsed tag set.
func (s *DocumentService) CreateDocument(
	path string, byteSize *int64, download domain.DownloadStatus, tagging domain.TaggingStatus,
) *domain.Document {
	document := domain.NewDocument(uuid.NewString(), path, byteSize, download, tagging)
	if s.tagStore != nil {
		tags, err := s.tagStore.GetTags(path)
		if err != nil {
			logger.Warn("Could not read stored tags for %s: %v", document.Filename(), err)
		} else {
			document.AddTags(tags...)
		}
	}
	return document
}

// ParseContent extracts the document's text and merges what it finds:
// a recognised date overwrites the current one, recognised tags are
// unioned into the tag set. Pages are concatenated without a separator,
// so a date or tag token could in principle span a page boundary; that
// is a known limitation of the extraction, not something this merge
// tries to repair.
func (s *DocumentService) ParseContent(ctx context.Context, document *domain.Document) error {
	if s.extractor == nil {
		return nil
	}

	pages, err := s.extractor.ExtractPages(ctx, document.Path())
	if err != nil {
		return fmt.Errorf("extracting content of %s: %w", document.Filename(), err)
	}

	var content strings.Builder
	for page := range pages {
		content.WriteString(page)
	}
	text := content.String()
	if text == "" {
		return nil
	}

	if date, _, ok := domain.ExtractDate(text); ok {
		logger.Debug("Content of %s contains date %s", document.Filename(), date.Format("2006-01-02"))
		document.SetDate(date)
	}
	if s.recogniser != nil {
		document.AddTags(s.recogniser.RecogniseTags(text)...)
	}
	return nil
}

// Rename files the document into the archive rooted at archiveRoot,
// under a year folder and the canonical filename. With slugify set, the
// specification is slugified in place first, so later calls observe the
// slugified value.
//
// Validation failures (ErrMissingDate, ErrMissingTags,
// ErrMissingSpecification, checked in that order) and the
// ErrAlreadyExists collision happen before the move; any filesystem
// failure is propagated wrapped. In every failure case the document's
// in-memory state is left as it was, apart from the explicit slugify
// step. On success the path and filename are updated, the document
// counts as tagged, and the sorted tag list is pushed to the tag store
// under the new path.
func (s *DocumentService) Rename(document *domain.Document, archiveRoot string, slugify bool) error {
	if slugify {
		document.SetSpecification(domain.Slugify(document.Specification(), SlugSeparator))
	}

	folderName, fileName, err := document.RenamingPath()
	if err != nil {
		return err
	}
	target := filepath.Join(archiveRoot, folderName, fileName)

	if err := s.files.CreateDirectories(filepath.Dir(target)); err != nil {
		return fmt.Errorf("creating archive folder %s: %w", folderName, err)
	}
	if s.files.Exists(target) && target != document.Path() {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, fileName)
	}
	if err := s.files.Move(document.Path(), target); err != nil {
		return fmt.Errorf("moving %s: %w", document.Filename(), err)
	}

	logger.Info("Archived %s as %s", document.Filename(), fileName)
	document.MarkRenamed(target)

	if s.tagStore != nil {
		if err := s.tagStore.SetTags(target, document.Tags()); err != nil {
			return fmt.Errorf("writing tags for %s: %w", fileName, err)
		}
	}
	return nil
}
