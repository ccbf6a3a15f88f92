package host

// Bytes is a shared mutable byte-array object. Sequence data materializes
// into Bytes rather than an immutable string so that in-place host-side
// edits are visible on the next extraction without another conversion.
type Bytes struct {
	data []byte
}

// NewBytes creates a byte-array object taking ownership of data.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

// Len returns the number of bytes.
func (b *Bytes) Len() int {
	return len(b.data)
}

// Data returns the live backing slice. Mutating it mutates the object.
func (b *Bytes) Data() []byte {
	return b.data
}

// Set replaces the whole content.
func (b *Bytes) Set(data []byte) {
	b.data = data
}

// Append appends to the content in place.
func (b *Bytes) Append(p ...byte) {
	b.data = append(b.data, p...)
}

// Copy returns a fresh copy of the current content.
func (b *Bytes) Copy() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}
