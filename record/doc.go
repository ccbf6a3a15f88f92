// Package record is the host-visible GenBank entity graph: Record, Source,
// Feature, Qualifier, Reference and the closed Location hierarchy.
//
// Entities parsed from a file start out native inside owned-or-shared cells
// (package coa) and materialize into host objects lazily, on first access.
// A record that is only loaded and written back never allocates host
// collections at all; one whose fields are touched behaves like any other
// mutable object graph from then on, and serialization always reflects the
// latest host-side state.
//
// Handles are pointers: two accessors returning the same *Feature (or
// *host.List, *host.Bytes, ...) return the same object, never a copy.
package record
