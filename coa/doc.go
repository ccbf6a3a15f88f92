// Package coa implements the owned-or-shared cell, the lazy conversion
// cache between native values and host-heap objects.
//
// A Cell starts out Owned, exclusively holding a native value. The first
// request for a host-visible form converts the value exactly once, consumes
// it, and parks the resulting handle in the cell; every later request
// returns the same handle, so host code always sees one stable object per
// cell. Reading the cell back out native-side never caches: a Shared cell
// re-extracts from the host object's current fields on every call, so host
// mutations are always reflected, while an Owned cell is a plain clone and
// never touches the host heap.
package coa
