// Package services implements the core application logic: the shared
// document store and the document workflows (construction, content
// parsing, renaming) that orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no CGO dependencies.
package services
