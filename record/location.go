package record

import (
	"fmt"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

// Strand is the reading direction of a location.
type Strand uint8

const (
	StrandDirect Strand = iota
	StrandReverse
)

func (s Strand) String() string {
	if s == StrandReverse {
		return "-"
	}
	return "+"
}

// Location is a host-visible feature position. The variant set is closed:
// Range, Between, Complement, Join, Order, Bond, OneOf and External are the
// only implementations.
//
// Bounds reports the outermost coordinates covered by the location. For a
// complement the coordinates come back swapped, so the start of a
// complemented span is the end of its inner span. Grouping variants take the
// minimum start and maximum end over their members; an empty group has no
// bounds and reports an empty-collection error. An external reference has no
// coordinates in the current record at all.
type Location interface {
	Bounds() (start, end int64, err error)
	Strand() Strand

	isLocation()
}

// Range is a contiguous span. Before and After carry the "<" and ">"
// partial-span markers.
type Range struct {
	Start  int64
	End    int64
	Before bool
	After  bool
}

// NewRange creates a complete (non-partial) span.
func NewRange(start, end int64) *Range {
	return &Range{Start: start, End: end}
}

func (r *Range) Bounds() (int64, int64, error) { return r.Start, r.End, nil }

func (r *Range) Strand() Strand { return StrandDirect }

// Between is a zero-width site between two consecutive positions.
type Between struct {
	Start int64
	End   int64
}

// NewBetween creates a site between start and end.
func NewBetween(start, end int64) *Between {
	return &Between{Start: start, End: end}
}

func (b *Between) Bounds() (int64, int64, error) { return b.Start, b.End, nil }

func (b *Between) Strand() Strand { return StrandDirect }

// Complement is an inner location read on the opposite strand.
type Complement struct {
	Inner Location
}

// NewComplement wraps inner on the opposite strand.
func NewComplement(inner Location) *Complement {
	return &Complement{Inner: inner}
}

func (c *Complement) Bounds() (int64, int64, error) {
	if c.Inner == nil {
		return 0, 0, errors.InvalidData(errors.PhaseAccess, nil, "complement with no inner location")
	}
	start, end, err := c.Inner.Bounds()
	if err != nil {
		return 0, 0, err
	}
	return end, start, nil
}

func (c *Complement) Strand() Strand {
	if c.Inner == nil || c.Inner.Strand() == StrandReverse {
		return StrandDirect
	}
	return StrandReverse
}

// Join is an ordered set of spans forming one contiguous product.
type Join struct {
	Locations *host.List[Location]
}

// NewJoin creates a join over the given members.
func NewJoin(locations ...Location) *Join {
	return &Join{Locations: host.NewList(locations...)}
}

func (j *Join) Bounds() (int64, int64, error) { return groupBounds(j.Locations) }

func (j *Join) Strand() Strand { return StrandDirect }

// Order is an ordered set of disjoint spans with no claim of joining.
type Order struct {
	Locations *host.List[Location]
}

// NewOrder creates an order over the given members.
func NewOrder(locations ...Location) *Order {
	return &Order{Locations: host.NewList(locations...)}
}

func (o *Order) Bounds() (int64, int64, error) { return groupBounds(o.Locations) }

func (o *Order) Strand() Strand { return StrandDirect }

// Bond marks a bond between the residues at the member locations.
type Bond struct {
	Locations *host.List[Location]
}

// NewBond creates a bond over the given members.
func NewBond(locations ...Location) *Bond {
	return &Bond{Locations: host.NewList(locations...)}
}

func (b *Bond) Bounds() (int64, int64, error) { return groupBounds(b.Locations) }

func (b *Bond) Strand() Strand { return StrandDirect }

// OneOf marks a feature located at exactly one of the member locations.
type OneOf struct {
	Locations *host.List[Location]
}

// NewOneOf creates a one-of over the given members.
func NewOneOf(locations ...Location) *OneOf {
	return &OneOf{Locations: host.NewList(locations...)}
}

func (o *OneOf) Bounds() (int64, int64, error) { return groupBounds(o.Locations) }

func (o *OneOf) Strand() Strand { return StrandDirect }

// External points into another record by accession, optionally with a
// sub-location inside that record.
type External struct {
	Accession string
	Inner     Location
}

// NewExternal creates a reference into another record.
func NewExternal(accession string, inner Location) *External {
	return &External{Accession: accession, Inner: inner}
}

func (e *External) Bounds() (int64, int64, error) {
	return 0, 0, errors.Unsupported(errors.PhaseAccess, "bounds of an external location")
}

func (e *External) Strand() Strand { return StrandDirect }

func (*Range) isLocation()      {}
func (*Between) isLocation()    {}
func (*Complement) isLocation() {}
func (*Join) isLocation()       {}
func (*Order) isLocation()      {}
func (*Bond) isLocation()       {}
func (*OneOf) isLocation()      {}
func (*External) isLocation()   {}

func groupBounds(members *host.List[Location]) (int64, int64, error) {
	if members == nil || members.Len() == 0 {
		return 0, 0, errors.EmptyCollection(errors.PhaseAccess, "bounds of an empty location group")
	}
	var start, end int64
	for i, m := range members.Items() {
		if m == nil {
			return 0, 0, errors.InvalidData(errors.PhaseAccess, nil, "nil member in location group")
		}
		s, e, err := m.Bounds()
		if err != nil {
			return 0, 0, err
		}
		if i == 0 || s < start {
			start = s
		}
		if i == 0 || e > end {
			end = e
		}
	}
	return start, end, nil
}

// LocationsOf validates a dynamically-typed member list, as used by callers
// that assemble grouping locations from untyped input.
func LocationsOf(items ...any) (*host.List[Location], error) {
	out := make([]Location, len(items))
	for i, it := range items {
		loc, ok := it.(Location)
		if !ok || loc == nil {
			return nil, errors.TypeMismatch(errors.PhaseValidate, nil, fmt.Sprintf("%T", it), "record.Location")
		}
		out[i] = loc
	}
	return host.NewList(out...), nil
}

func toHostLocation(native seq.Location) (Location, error) {
	switch l := native.(type) {
	case seq.Range:
		return &Range{Start: l.Start, End: l.End, Before: l.Before, After: l.After}, nil
	case seq.Between:
		return &Between{Start: l.Start, End: l.End}, nil
	case seq.Complement:
		inner, err := toHostLocation(l.Inner)
		if err != nil {
			return nil, err
		}
		return &Complement{Inner: inner}, nil
	case seq.Join:
		members, err := toHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return &Join{Locations: members}, nil
	case seq.Order:
		members, err := toHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return &Order{Locations: members}, nil
	case seq.Bond:
		members, err := toHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return &Bond{Locations: members}, nil
	case seq.OneOf:
		members, err := toHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return &OneOf{Locations: members}, nil
	case seq.External:
		out := &External{Accession: l.Accession}
		if l.Inner != nil {
			inner, err := toHostLocation(l.Inner)
			if err != nil {
				return nil, err
			}
			out.Inner = inner
		}
		return out, nil
	default:
		return nil, errors.InvalidVariant(errors.PhaseConvert, nil, fmt.Sprintf("%T", native))
	}
}

func toHostLocations(native []seq.Location) (*host.List[Location], error) {
	out := make([]Location, len(native))
	for i, l := range native {
		h, err := toHostLocation(l)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return host.NewList(out...), nil
}

func fromHostLocation(h Location) (seq.Location, error) {
	if h == nil {
		return nil, errors.InvalidData(errors.PhaseExtract, nil, "nil location in list")
	}
	switch l := h.(type) {
	case *Range:
		return seq.Range{Start: l.Start, End: l.End, Before: l.Before, After: l.After}, nil
	case *Between:
		return seq.Between{Start: l.Start, End: l.End}, nil
	case *Complement:
		inner, err := fromHostLocation(l.Inner)
		if err != nil {
			return nil, err
		}
		return seq.Complement{Inner: inner}, nil
	case *Join:
		members, err := fromHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return seq.Join{Locations: members}, nil
	case *Order:
		members, err := fromHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return seq.Order{Locations: members}, nil
	case *Bond:
		members, err := fromHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return seq.Bond{Locations: members}, nil
	case *OneOf:
		members, err := fromHostLocations(l.Locations)
		if err != nil {
			return nil, err
		}
		return seq.OneOf{Locations: members}, nil
	case *External:
		out := seq.External{Accession: l.Accession}
		if l.Inner != nil {
			inner, err := fromHostLocation(l.Inner)
			if err != nil {
				return nil, err
			}
			out.Inner = inner
		}
		return out, nil
	default:
		return nil, errors.InvalidVariant(errors.PhaseExtract, nil, fmt.Sprintf("%T", h))
	}
}

func fromHostLocations(members *host.List[Location]) ([]seq.Location, error) {
	if members == nil {
		return nil, nil
	}
	out := make([]seq.Location, members.Len())
	for i, m := range members.Items() {
		n, err := fromHostLocation(m)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
