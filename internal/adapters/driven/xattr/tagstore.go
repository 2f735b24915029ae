// Package xattr implements the TagStore port over extended file
// attributes, the portable analogue of Finder tags. Tags are stored
// under the freedesktop "user.xdg.tags" attribute as a comma-separated
// list, so other tools reading that convention see the same tags.
package xattr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pkg/xattr"

	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
)

// attrName is the freedesktop convention for user-visible file tags.
const attrName = "user.xdg.tags"

// Ensure TagStore implements the interface.
var _ driven.TagStore = (*TagStore)(nil)

// TagStore reads and writes per-file tag lists as extended attributes.
type TagStore struct{}

// NewTagStore creates an extended-attribute tag store.
func NewTagStore() *TagStore {
	return &TagStore{}
}

// Supported reports whether the filesystem containing path accepts
// extended attributes at all.
func Supported(path string) bool {
	_, err := xattr.Get(path, attrName)
	if err == nil {
		return true
	}
	return errors.Is(err, xattr.ENOATTR)
}

// GetTags returns the tags recorded for the file at path. A file
// without the attribute yields an empty list.
func (*TagStore) GetTags(path string) ([]string, error) {
	data, err := xattr.Get(path, attrName)
	if err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading tags of %s: %w", path, err)
	}

	var tags []string
	for _, tag := range strings.Split(string(data), ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// SetTags replaces the tags recorded for the file at path.
func (*TagStore) SetTags(path string, tags []string) error {
	if err := xattr.Set(path, attrName, []byte(strings.Join(tags, ","))); err != nil {
		return fmt.Errorf("writing tags of %s: %w", path, err)
	}
	return nil
}
