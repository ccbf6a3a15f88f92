// Package flatfile reads and writes the GenBank flat-file format.
//
// Reader is a forward-only pull scanner: each Next call consumes exactly one
// entry, up to and including its // terminator, and yields a native seq.Seq.
// Syntax errors carry the one-based line number they were detected on; I/O
// failures from the underlying stream pass through wrapped, with the
// original error reachable via errors.As.
//
// Writer serializes native records back to text. Two options mirror the
// classic serializer knobs: EscapeLocus replaces whitespace in the locus
// name with underscores, and TruncateLocus caps the LOCUS line at 79
// columns.
package flatfile
