package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors; filesystem failures are
// wrapped and propagated as-is so callers can tell a precondition apart
// from a generic I/O problem.
var (
	// ErrMissingDate indicates a document cannot be filed without a date.
	ErrMissingDate = errors.New("document has no date")

	// ErrMissingTags indicates a document cannot be filed without tags.
	ErrMissingTags = errors.New("document has no tags")

	// ErrMissingSpecification indicates a document cannot be filed without a description.
	ErrMissingSpecification = errors.New("document has no description")

	// ErrAlreadyExists indicates a different file already occupies the rename target.
	ErrAlreadyExists = errors.New("a file with this name already exists in the archive")

	// ErrInvalidSortKey indicates an unrecognised sort field was requested.
	ErrInvalidSortKey = errors.New("invalid sort key")
)
