// Package domain defines the core business entities for the archive.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Document: A mutable archive entity identified by an opaque ID
//   - Tag: A display aggregate of tag name and usage count
//   - DownloadStatus / TaggingStatus: Document lifecycle annotations
//   - SortField: The closed set of fields documents can be sorted by
//
// It also owns the canonical filename grammar
// ("yyyy-MM-dd--specification__tag1_tag2.pdf"): date extraction,
// filename parsing and serialisation, and slugification.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library and pure text helpers (x/text, humanize)
//   - Cannot Import: Any other internal/ package
package domain
