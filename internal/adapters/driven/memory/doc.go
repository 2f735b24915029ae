// Package memory provides in-memory implementations of the driven
// ports. They back the test suites and any caller that wants the
// document workflows without touching the real filesystem.
package memory
