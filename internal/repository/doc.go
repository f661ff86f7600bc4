// Package repository defines the data access interface for the archigen
// run-history catalog.
//
// The catalog records completed generation runs (parameters, output path,
// resulting counts) so operators can see what was generated when. It is a
// convenience log, not part of the document pipeline: a catalog failure after
// a successful write never invalidates the generated file.
//
// The actual implementation is in the sqlite subpackage, which uses a local
// SQLite database with WAL mode and migrates its schema on startup.
package repository
