package record

import (
	"fmt"

	"github.com/seqforge/gbio/coa"
	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

// Feature is a host annotated region. Kind, location and qualifiers each sit
// in their own cell, so touching one does not materialize the others.
type Feature struct {
	kind       coa.Cell[string, *host.Str]
	location   coa.Cell[seq.Location, Location]
	qualifiers coa.Cell[[]seq.Qualifier, *host.List[*Qualifier]]
	session    *host.Interner
}

// NewFeature creates a host-constructed feature with an empty qualifier list.
func NewFeature(kind *host.Str, location Location) *Feature {
	f := &Feature{}
	f.kind.SetShared(kind)
	f.location.SetShared(location)
	f.qualifiers.SetShared(host.NewList[*Qualifier]())
	return f
}

// Kind returns the shared kind handle, materializing it on first access.
// The handle is interned per session, so every feature of the same kind in
// one loaded batch returns the identical *host.Str.
func (f *Feature) Kind() (*host.Str, error) {
	return f.kind.Shared(codecStr, f.session)
}

// SetKind replaces the kind.
func (f *Feature) SetKind(kind *host.Str) {
	f.kind.SetShared(kind)
}

// Location returns the shared location handle, materializing it on first
// access.
func (f *Feature) Location() (Location, error) {
	return f.location.Shared(codecLocation, f.session)
}

// SetLocation replaces the location.
func (f *Feature) SetLocation(loc Location) {
	f.location.SetShared(loc)
}

// Qualifiers returns the shared qualifier list, materializing it on first
// access. Mutations through the list are reflected in later serialization.
func (f *Feature) Qualifiers() (*host.List[*Qualifier], error) {
	return f.qualifiers.Shared(codecQualifiers, f.session)
}

// SetQualifiers replaces the qualifier list. A nil list becomes empty.
func (f *Feature) SetQualifiers(l *host.List[*Qualifier]) {
	if l == nil {
		l = host.NewList[*Qualifier]()
	}
	f.qualifiers.SetShared(l)
}

// FeaturesOf validates a dynamically-typed feature list.
func FeaturesOf(items ...any) (*host.List[*Feature], error) {
	out := make([]*Feature, len(items))
	for i, it := range items {
		f, ok := it.(*Feature)
		if !ok || f == nil {
			return nil, errors.TypeMismatch(errors.PhaseValidate, nil, fmt.Sprintf("%T", it), "*record.Feature")
		}
		out[i] = f
	}
	return host.NewList(out...), nil
}

type featureCodec struct{}

func (featureCodec) Convert(native seq.Feature, session *host.Interner) (*Feature, error) {
	f := &Feature{session: session}
	f.kind = coa.Own[string, *host.Str](native.Kind)
	f.location = coa.Own[seq.Location, Location](native.Location)
	f.qualifiers = coa.Own[[]seq.Qualifier, *host.List[*Qualifier]](native.Qualifiers)
	return f, nil
}

func (featureCodec) Extract(f *Feature) (seq.Feature, error) {
	if f == nil {
		return seq.Feature{}, errors.InvalidData(errors.PhaseExtract, nil, "nil feature in list")
	}
	kind, err := f.kind.Owned(codecStr)
	if err != nil {
		return seq.Feature{}, err
	}
	loc, err := f.location.Owned(codecLocation)
	if err != nil {
		return seq.Feature{}, err
	}
	quals, err := f.qualifiers.Owned(codecQualifiers)
	if err != nil {
		return seq.Feature{}, err
	}
	return seq.Feature{Kind: kind, Location: loc, Qualifiers: quals}, nil
}

func (featureCodec) Placeholder() seq.Feature { return seq.Feature{} }

func (featureCodec) Clone(native seq.Feature) seq.Feature { return native.Clone() }
