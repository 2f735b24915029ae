package driven

// TagStore reads and writes OS-level tag lists keyed by file path.
// Backed by extended attributes in production.
type TagStore interface {
	// GetTags returns the tags recorded for the file at path.
	// A file without recorded tags yields an empty list, not an error.
	GetTags(path string) ([]string, error)

	// SetTags replaces the tags recorded for the file at path.
	SetTags(path string, tags []string) error
}
