package driven

// FileManager is the narrow filesystem capability the rename workflow
// needs. Implementations must fail with an error rather than partially
// move a file; the existence check plus move is not atomic, so callers
// must not race two renames onto the same target path.
type FileManager interface {
	// Move relocates a file. The parent of to must already exist.
	Move(from, to string) error

	// CreateDirectories creates path and any missing parents.
	CreateDirectories(path string) error

	// Exists reports whether something occupies path.
	Exists(path string) bool
}
