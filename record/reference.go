package record

import (
	"fmt"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

// Reference is a host bibliographic reference. All fields are plain strings
// with "" meaning absent; there is nothing lazy about a reference beyond the
// list that holds it.
type Reference struct {
	Description string
	Title       string
	Authors     string
	Consortium  string
	Journal     string
	Pubmed      string
	Remark      string
}

// NewReference creates a reference with the mandatory description line.
func NewReference(description string) *Reference {
	return &Reference{Description: description}
}

// ReferencesOf validates a dynamically-typed reference list.
func ReferencesOf(items ...any) (*host.List[*Reference], error) {
	out := make([]*Reference, len(items))
	for i, it := range items {
		r, ok := it.(*Reference)
		if !ok || r == nil {
			return nil, errors.TypeMismatch(errors.PhaseValidate, nil, fmt.Sprintf("%T", it), "*record.Reference")
		}
		out[i] = r
	}
	return host.NewList(out...), nil
}

type referenceCodec struct{}

func (referenceCodec) Convert(native seq.Reference, _ *host.Interner) (*Reference, error) {
	return &Reference{
		Description: native.Description,
		Title:       native.Title,
		Authors:     native.Authors,
		Consortium:  native.Consortium,
		Journal:     native.Journal,
		Pubmed:      native.Pubmed,
		Remark:      native.Remark,
	}, nil
}

func (referenceCodec) Extract(r *Reference) (seq.Reference, error) {
	if r == nil {
		return seq.Reference{}, errors.InvalidData(errors.PhaseExtract, nil, "nil reference in list")
	}
	return seq.Reference{
		Description: r.Description,
		Title:       r.Title,
		Authors:     r.Authors,
		Consortium:  r.Consortium,
		Journal:     r.Journal,
		Pubmed:      r.Pubmed,
		Remark:      r.Remark,
	}, nil
}

func (referenceCodec) Placeholder() seq.Reference { return seq.Reference{} }

func (referenceCodec) Clone(native seq.Reference) seq.Reference { return native }
