package record

import (
	"fmt"

	"github.com/seqforge/gbio/coa"
	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

// Qualifier is a host feature annotation. The key is interned per session,
// so every qualifier parsed from one load sharing a key shares one *host.Str.
// A nil Value is a bare qualifier such as /pseudo.
type Qualifier struct {
	key     coa.Cell[string, *host.Str]
	Value   *string
	session *host.Interner
}

// NewQualifier creates a host-constructed qualifier.
func NewQualifier(key *host.Str, value *string) *Qualifier {
	q := &Qualifier{Value: value}
	q.key.SetShared(key)
	return q
}

// Key returns the shared key handle, materializing it on first access.
func (q *Qualifier) Key() (*host.Str, error) {
	return q.key.Shared(codecStr, q.session)
}

// SetKey replaces the key.
func (q *Qualifier) SetKey(key *host.Str) {
	q.key.SetShared(key)
}

// QualifiersOf validates a dynamically-typed qualifier list.
func QualifiersOf(items ...any) (*host.List[*Qualifier], error) {
	out := make([]*Qualifier, len(items))
	for i, it := range items {
		q, ok := it.(*Qualifier)
		if !ok || q == nil {
			return nil, errors.TypeMismatch(errors.PhaseValidate, nil, fmt.Sprintf("%T", it), "*record.Qualifier")
		}
		out[i] = q
	}
	return host.NewList(out...), nil
}

type qualifierCodec struct{}

func (qualifierCodec) Convert(native seq.Qualifier, session *host.Interner) (*Qualifier, error) {
	q := &Qualifier{Value: native.Value, session: session}
	q.key = coa.Own[string, *host.Str](native.Key)
	return q, nil
}

func (qualifierCodec) Extract(q *Qualifier) (seq.Qualifier, error) {
	if q == nil {
		return seq.Qualifier{}, errors.InvalidData(errors.PhaseExtract, nil, "nil qualifier in list")
	}
	key, err := q.key.Owned(codecStr)
	if err != nil {
		return seq.Qualifier{}, err
	}
	out := seq.Qualifier{Key: key}
	if q.Value != nil {
		v := *q.Value
		out.Value = &v
	}
	return out, nil
}

func (qualifierCodec) Placeholder() seq.Qualifier { return seq.Qualifier{} }

func (qualifierCodec) Clone(native seq.Qualifier) seq.Qualifier { return native.Clone() }
