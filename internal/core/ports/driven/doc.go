// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileManager: Filesystem primitives used during renames
//
// # Optional Interfaces
//
// These can be nil - the services degrade gracefully:
//
//   - TagStore: Per-file tag lists (extended attributes in production)
//   - ContentExtractor: Page text of an archived file (PDF in production)
//   - TagRecogniser: Tag tokens found in extracted text
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
