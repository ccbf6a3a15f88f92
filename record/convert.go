package record

import (
	"github.com/seqforge/gbio/coa"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

// Stateless codec singletons. Each one teaches a cell how its native value
// materializes into the host heap and how it is read back out.
var (
	codecStr        = strCodec{}
	codecBytes      = bytesCodec{}
	codecLocation   = locationCodec{}
	codecQualifiers = listCodec[seq.Qualifier, *Qualifier]{elem: qualifierCodec{}}
	codecFeatures   = listCodec[seq.Feature, *Feature]{elem: featureCodec{}}
	codecReferences = listCodec[seq.Reference, *Reference]{elem: referenceCodec{}}
	codecSource     = sourceCodec{}
)

// strCodec handles interned strings (feature kinds, qualifier keys).
type strCodec struct{}

func (strCodec) Convert(native string, session *host.Interner) (*host.Str, error) {
	return session.Intern(native), nil
}

func (strCodec) Extract(h *host.Str) (string, error) {
	if h == nil {
		return "", nil
	}
	return h.Value(), nil
}

func (strCodec) Placeholder() string { return "" }

func (strCodec) Clone(native string) string { return native }

// bytesCodec handles sequence data.
type bytesCodec struct{}

func (bytesCodec) Convert(native []byte, _ *host.Interner) (*host.Bytes, error) {
	return host.NewBytes(native), nil
}

func (bytesCodec) Extract(h *host.Bytes) ([]byte, error) {
	if h == nil {
		return nil, nil
	}
	return h.Copy(), nil
}

func (bytesCodec) Placeholder() []byte { return nil }

func (bytesCodec) Clone(native []byte) []byte {
	if native == nil {
		return nil
	}
	out := make([]byte, len(native))
	copy(out, native)
	return out
}

// locationCodec handles the closed location hierarchy. Materialization left
// behind a moved-out native location once; the placeholder is an arbitrary
// cheap variant that is never observed.
type locationCodec struct{}

func (locationCodec) Convert(native seq.Location, _ *host.Interner) (Location, error) {
	return toHostLocation(native)
}

func (locationCodec) Extract(h Location) (seq.Location, error) {
	return fromHostLocation(h)
}

func (locationCodec) Placeholder() seq.Location { return seq.Between{Start: 0, End: 1} }

func (locationCodec) Clone(native seq.Location) seq.Location {
	if native == nil {
		return nil
	}
	return native.Clone()
}

// listCodec lifts an element codec over a whole list. Converting a list
// allocates one host object per element, but each element's own fields stay
// native until touched.
type listCodec[T any, H any] struct {
	elem coa.Codec[T, H]
}

func (c listCodec[T, H]) Convert(native []T, session *host.Interner) (*host.List[H], error) {
	out := make([]H, len(native))
	for i, n := range native {
		h, err := c.elem.Convert(n, session)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return host.NewList(out...), nil
}

func (c listCodec[T, H]) Extract(l *host.List[H]) ([]T, error) {
	if l == nil {
		return nil, nil
	}
	out := make([]T, l.Len())
	for i, h := range l.Items() {
		n, err := c.elem.Extract(h)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (c listCodec[T, H]) Placeholder() []T { return nil }

func (c listCodec[T, H]) Clone(native []T) []T {
	if native == nil {
		return nil
	}
	out := make([]T, len(native))
	for i, n := range native {
		out[i] = c.elem.Clone(n)
	}
	return out
}
