// Package recording stores structured records in a SQLite database. Tables
// are derived from sample struct entries, inserts are batched, and buffered
// rows are flushed when the process exits.
package recording
