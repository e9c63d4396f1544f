// Package dirmeta provides a cross-platform abstraction over filesystem
// paths and metadata retrieval. It is the core behind the dirmeta CLI and
// TUI: a separator-aware Path value type, drive enumeration, directory
// listing, and per-entry metadata collection (owner, modification time,
// human-readable size, item type).
//
// All operations are synchronous blocking I/O against the live filesystem;
// nothing is cached between calls except the FileType lookup, which keeps a
// process-global memo.
//
// Structural failures (missing directory, wrong operand type) are returned
// as errors that wrap the package sentinels and can be classified with
// errors.Is. Metadata collection never fails with an error: every problem
// is reported as data in the returned record's Err field.
package dirmeta
