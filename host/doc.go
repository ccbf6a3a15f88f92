// Package host provides the mutable host-heap object types that native
// GenBank values materialize into.
//
// A host handle is a plain pointer: cloning a handle is copying the pointer,
// and two handles are the same object exactly when the pointers are equal.
// All types here have reference semantics and interior mutability, so a
// mutation made through any handle is visible through every other handle to
// the same object, and to later extraction back into native form.
//
// The Interner deduplicates small recurring strings (feature kinds and
// qualifier keys) within one parsing session. It is session-scoped by
// design: a new table per load call or per record iterator, never a
// process-wide cache.
package host
