package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
)

// tagSeparator splits the tag block from the rest of a canonical
// filename; individual tags inside the block are joined by a single "_".
const tagSeparator = "__"

// archiveExtension is the fixed extension of canonical filenames.
const archiveExtension = ".pdf"

// trustedSpecification matches the canonical "--<spec>__" scheme. A
// specification produced by the archive never contains underscores, so
// the capture stops at the tag separator.
var trustedSpecification = regexp.MustCompile(`--([\p{L}\p{N}-]+)__`)

// ParseFilename splits a filename into the canonical grammar's three
// fields. Parsing never fails: any field that cannot be recovered is
// returned as its zero value, and a nil tag slice means "no tag block
// present", which callers must not conflate with an explicitly empty
// tag set. The returned specification is raw; assigning it to a
// Document applies the normalisation invariant.
func ParseFilename(filename string) (date *time.Time, specification string, tagNames []string) {
	consumed := ""
	if parsed, substring, ok := ExtractDate(filename); ok {
		date = &parsed
		consumed = substring
	}

	if match := trustedSpecification.FindStringSubmatch(filename); match != nil {
		// Trusted path: already canonical, no cleanup.
		specification = match[1]
	} else {
		specification = rawSpecification(filename, consumed)
	}

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if i := strings.LastIndex(stem, tagSeparator); i >= 0 {
		block := stem[i+len(tagSeparator):]
		if block != "" {
			for _, name := range strings.Split(block, "_") {
				if name != "" {
					tagNames = append(tagNames, strings.ToLower(name))
				}
			}
		}
	}
	return date, specification, tagNames
}

// rawSpecification derives a best-effort description from a filename
// that does not follow the canonical scheme: drop the consumed date,
// drop the extension, cut the tag block, and fold the remainder into
// hyphenated form.
func rawSpecification(filename, consumedDate string) string {
	raw := filename
	if consumedDate != "" {
		raw = strings.Replace(raw, consumedDate, "", 1)
	}
	raw = strings.TrimSuffix(raw, filepath.Ext(raw))
	if i := strings.Index(raw, tagSeparator); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	return strings.Trim(raw, "- ")
}

// BuildFilename serialises the three fields back into the canonical
// grammar: "yyyy-MM-dd--specification__tag1_tag2.pdf" with the tags
// sorted lexicographically. It is the left-inverse of ParseFilename for
// any filename it produced; it makes no attempt to reproduce arbitrary
// input names byte-for-byte.
func BuildFilename(date time.Time, specification string, tagNames []string) string {
	sorted := slices.Clone(tagNames)
	slices.Sort(sorted)
	return fmt.Sprintf("%s--%s%s%s%s",
		date.Format(dateLayout),
		specification,
		tagSeparator,
		strings.Join(sorted, "_"),
		archiveExtension)
}
