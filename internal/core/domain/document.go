package domain

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DownloadState describes where a document's file currently lives.
type DownloadState string

// Available download states.
const (
	// DownloadStateCloudOnly means the file exists only in cloud storage.
	DownloadStateCloudOnly DownloadState = "cloud_only"

	// DownloadStateDownloading means the file is being fetched.
	DownloadStateDownloading DownloadState = "downloading"

	// DownloadStateLocal means the file is fully available on disk.
	DownloadStateLocal DownloadState = "local"
)

// IsValid returns true if the download state is recognised.
func (s DownloadState) IsValid() bool {
	switch s {
	case DownloadStateCloudOnly, DownloadStateDownloading, DownloadStateLocal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s DownloadState) String() string {
	return string(s)
}

// DownloadStatus is purely informational; the core enforces no state
// machine over it. Progress is meaningful (0.0 to 1.0) only while the
// state is DownloadStateDownloading.
type DownloadStatus struct {
	State    DownloadState
	Progress float64
}

// TaggingStatus records whether a document has completed the filing
// workflow. The values are totally ordered: untagged sorts before tagged.
type TaggingStatus int

// Available tagging statuses.
const (
	// TaggingStatusUntagged means the document still awaits filing.
	TaggingStatusUntagged TaggingStatus = iota

	// TaggingStatusTagged means the document was renamed into the archive.
	TaggingStatusTagged
)

// String returns the string representation.
func (s TaggingStatus) String() string {
	if s == TaggingStatusTagged {
		return "tagged"
	}
	return "untagged"
}

// Document is a mutable archive entity wrapping one file on disk.
//
// Identity is the opaque ID alone: the path is deliberately excluded so
// a rename cannot leave two entities for the same file. All mutable
// fields are reached through accessors that uphold the entity's
// invariants (specification normalisation, tag set semantics).
//
// A Document is not internally synchronised. Callers that share one
// instance across goroutines must serialise writes themselves, and must
// never run two renames of the same document, or of two documents with
// the same target path, concurrently.
type Document struct {
	id            string
	path          string
	filename      string
	folder        string
	date          *time.Time
	specification string
	tags          map[string]struct{}
	size          string
	download      DownloadStatus
	tagging       TaggingStatus
}

// NewDocument creates a document for the file at path. The filename is
// parsed through the canonical grammar to seed date, specification and
// tags; byteSize, when known, is rendered once into a humanised size.
// The ID is assigned here and never recomputed.
func NewDocument(id, path string, byteSize *int64, download DownloadStatus, tagging TaggingStatus) *Document {
	d := &Document{
		id:       id,
		tags:     make(map[string]struct{}),
		download: download,
		tagging:  tagging,
	}
	d.setPath(path)
	if byteSize != nil && *byteSize >= 0 {
		d.size = humanize.Bytes(uint64(*byteSize))
	}

	date, specification, tagNames := ParseFilename(d.filename)
	d.date = date
	if specification != "" {
		d.SetSpecification(specification)
	}
	d.AddTags(tagNames...)
	return d
}

// setPath stores the path and refreshes its cached projections.
func (d *Document) setPath(path string) {
	d.path = path
	d.filename = filepath.Base(path)
	d.folder = filepath.Base(filepath.Dir(path))
}

// ID returns the opaque identifier, stable for the entity's lifetime.
func (d *Document) ID() string { return d.id }

// Path returns the current absolute location of the file.
func (d *Document) Path() string { return d.path }

// Filename returns the last path component.
func (d *Document) Filename() string { return d.filename }

// Folder returns the name of the directory containing the file.
func (d *Document) Folder() string { return d.folder }

// Size returns the humanised byte size, or "" when unknown.
func (d *Document) Size() string { return d.size }

// Date returns the document date, or nil while undated.
func (d *Document) Date() *time.Time {
	if d.date == nil {
		return nil
	}
	date := *d.date
	return &date
}

// SetDate assigns the document date.
func (d *Document) SetDate(date time.Time) {
	d.date = &date
}

// Specification returns the normalised description.
func (d *Document) Specification() string { return d.specification }

// SetSpecification assigns the description, normalising underscores to
// hyphens and lower-casing. The normalisation is idempotent.
func (d *Document) SetSpecification(specification string) {
	d.specification = strings.ToLower(strings.ReplaceAll(specification, "_", "-"))
}

// Tags returns the tag set sorted lexicographically.
func (d *Document) Tags() []string {
	tags := slices.Collect(maps.Keys(d.tags))
	slices.Sort(tags)
	return tags
}

// HasTags returns true if at least one tag is set.
func (d *Document) HasTags() bool { return len(d.tags) > 0 }

// AddTags unions names into the tag set, lower-cased. Empty names are
// ignored.
func (d *Document) AddTags(names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		d.tags[strings.ToLower(name)] = struct{}{}
	}
}

// RemoveTag deletes a tag from the set, if present.
func (d *Document) RemoveTag(name string) {
	delete(d.tags, strings.ToLower(name))
}

// DownloadStatus returns the informational download status.
func (d *Document) DownloadStatus() DownloadStatus { return d.download }

// SetDownloadStatus assigns the download status.
func (d *Document) SetDownloadStatus(status DownloadStatus) { d.download = status }

// TaggingStatus returns the filing status.
func (d *Document) TaggingStatus() TaggingStatus { return d.tagging }

// SetTaggingStatus assigns the filing status.
func (d *Document) SetTaggingStatus(status TaggingStatus) { d.tagging = status }

// Equal reports entity equality: two documents are the same entity iff
// their IDs match, regardless of path or any other field. Keying a map
// by ID is the hash analogue and is consistent with Equal.
func (d *Document) Equal(other *Document) bool {
	return other != nil && d.id == other.id
}

// Less is the default display ordering: date ascending when both dates
// are present and differ, filename descending otherwise. The tiebreak
// keeps the ordering strict even when dates are absent or equal.
func (d *Document) Less(other *Document) bool {
	if d.date != nil && other.date != nil && !d.date.Equal(*other.date) {
		return d.date.Before(*other.date)
	}
	return d.filename > other.filename
}

// SearchTerm exposes the filename for substring search.
func (d *Document) SearchTerm() string { return d.filename }

// RenamingPath derives the archive location for this document: the
// canonical filename plus its year folder. Preconditions are checked in
// order - date, then tags, then specification - and the first missing
// one fails the call without mutating anything.
func (d *Document) RenamingPath() (folderName, fileName string, err error) {
	if d.date == nil {
		return "", "", ErrMissingDate
	}
	if len(d.tags) == 0 {
		return "", "", ErrMissingTags
	}
	if d.specification == "" {
		return "", "", ErrMissingSpecification
	}
	fileName = BuildFilename(*d.date, d.specification, d.Tags())
	return fileName[:4], fileName, nil
}

// MarkRenamed records a completed rename: the path moves to newPath,
// the cached projections refresh, and the document counts as tagged.
// Only the rename orchestration should call this, after the filesystem
// move succeeded.
func (d *Document) MarkRenamed(newPath string) {
	d.setPath(newPath)
	d.tagging = TaggingStatusTagged
}
