package coa

import (
	"github.com/seqforge/gbio/host"
)

// Codec defines the dual representation of a native type T: how it
// materializes into its host-heap equivalent H and how it is read back.
// Convert consumes the native value; Extract must not mutate the handle.
// Placeholder supplies the cheap stand-in left behind when a cell's native
// value is moved out during materialization.
type Codec[T, H any] interface {
	Convert(native T, session *host.Interner) (H, error)
	Extract(handle H) (T, error)
	Placeholder() T
	Clone(native T) T
}

// State identifies which arm of a cell is live.
type State uint8

const (
	// Owned means the cell exclusively holds a native value and no host
	// materialization exists yet.
	Owned State = iota
	// Shared means a host object exists and is the single source of truth.
	Shared
)

// Cell holds either a native T or the host handle it was materialized
// into. The zero Cell is Owned with T's zero value.
type Cell[T, H any] struct {
	native T
	handle H
	state  State
}

// Own creates a cell holding a native value.
func Own[T, H any](native T) Cell[T, H] {
	return Cell[T, H]{native: native, state: Owned}
}

// Share creates a cell that is already backed by a host object.
func Share[T, H any](handle H) Cell[T, H] {
	return Cell[T, H]{handle: handle, state: Shared}
}

// State reports which arm is live.
func (c *Cell[T, H]) State() State {
	return c.state
}

// Shared returns the host handle for the cell's value, materializing it on
// first use. Repeated calls return the identical handle; exactly one
// Convert happens over the cell's lifetime, regardless of call count.
func (c *Cell[T, H]) Shared(codec Codec[T, H], session *host.Interner) (H, error) {
	if c.state == Shared {
		return c.handle, nil
	}
	handle, err := codec.Convert(c.native, session)
	if err != nil {
		var zero H
		return zero, err
	}
	c.native = codec.Placeholder()
	c.handle = handle
	c.state = Shared
	return handle, nil
}

// Owned returns a native value for the cell. An Owned cell clones its
// payload without touching the host heap; a Shared cell re-extracts from
// the host object's current state on every call so host-side mutations are
// never stale.
func (c *Cell[T, H]) Owned(codec Codec[T, H]) (T, error) {
	if c.state == Owned {
		return codec.Clone(c.native), nil
	}
	return codec.Extract(c.handle)
}

// SetOwned replaces the cell with a native value, discarding any host
// handle it held.
func (c *Cell[T, H]) SetOwned(native T) {
	var zero H
	c.native = native
	c.handle = zero
	c.state = Owned
}

// SetShared replaces the cell with a host handle.
func (c *Cell[T, H]) SetShared(handle H) {
	var zero T
	c.native = zero
	c.handle = handle
	c.state = Shared
}
