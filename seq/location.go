package seq

// Location is the native position of a feature within (or beyond) a record.
//
// The variant set is closed: Range, Between, Complement, Join, Order, Bond,
// OneOf and External are the only implementations.
type Location interface {
	// Clone returns a deep copy of the location.
	Clone() Location

	isLocation()
}

// Range is a contiguous span of positions. Before and After carry the
// GenBank "<" and ">" partial-span modifiers.
type Range struct {
	Start  int64
	End    int64
	Before bool
	After  bool
}

// Between is a zero-width site between two consecutive positions (GenBank
// "n^m").
type Between struct {
	Start int64
	End   int64
}

// Complement is an inner location read on the opposite strand.
type Complement struct {
	Inner Location
}

// Join is an ordered set of spans forming one contiguous product.
type Join struct {
	Locations []Location
}

// Order is an ordered set of disjoint spans with no claim of joining.
type Order struct {
	Locations []Location
}

// Bond marks a bond between the residues at the given locations.
type Bond struct {
	Locations []Location
}

// OneOf marks a feature located at exactly one of the given locations.
type OneOf struct {
	Locations []Location
}

// External points into another record by accession, optionally with a
// sub-location inside that record.
type External struct {
	Accession string
	Inner     Location
}

func (Range) isLocation()      {}
func (Between) isLocation()    {}
func (Complement) isLocation() {}
func (Join) isLocation()       {}
func (Order) isLocation()      {}
func (Bond) isLocation()       {}
func (OneOf) isLocation()      {}
func (External) isLocation()   {}

// Clone implements Location.
func (l Range) Clone() Location { return l }

// Clone implements Location.
func (l Between) Clone() Location { return l }

// Clone implements Location.
func (l Complement) Clone() Location {
	out := Complement{}
	if l.Inner != nil {
		out.Inner = l.Inner.Clone()
	}
	return out
}

// Clone implements Location.
func (l Join) Clone() Location { return Join{Locations: CloneLocations(l.Locations)} }

// Clone implements Location.
func (l Order) Clone() Location { return Order{Locations: CloneLocations(l.Locations)} }

// Clone implements Location.
func (l Bond) Clone() Location { return Bond{Locations: CloneLocations(l.Locations)} }

// Clone implements Location.
func (l OneOf) Clone() Location { return OneOf{Locations: CloneLocations(l.Locations)} }

// Clone implements Location.
func (l External) Clone() Location {
	out := External{Accession: l.Accession}
	if l.Inner != nil {
		out.Inner = l.Inner.Clone()
	}
	return out
}

// CloneLocations deep-copies a location list.
func CloneLocations(ls []Location) []Location {
	if ls == nil {
		return nil
	}
	out := make([]Location, len(ls))
	for i, l := range ls {
		out[i] = l.Clone()
	}
	return out
}
