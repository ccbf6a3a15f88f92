// Package seq defines the native GenBank value model: plain Go values with
// no host-heap ties, produced by the flatfile engine and cached inside the
// record layer's owned-or-shared cells.
//
// Location is a closed sum type: the eight variants enumerated here are the
// only implementations, enforced by the unexported marker method. Host code
// must not introduce new variants.
package seq
