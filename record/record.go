package record

import (
	"github.com/seqforge/gbio/coa"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

// Record is one host-visible GenBank entry.
//
// Scalar metadata is held as plain exported fields, cheap enough that lazy
// conversion would buy nothing. The expensive collections (sequence bytes,
// references, features) and the optional structured fields (source, contig)
// sit in owned-or-shared cells and only materialize host objects when
// accessed. A record that is loaded and dumped untouched never allocates a
// feature or reference object.
type Record struct {
	Name         string
	Length       *int
	Unit         seq.Unit
	MoleculeType string
	Division     string
	Definition   string
	Accession    string
	Version      string
	DBLink       string
	Keywords     string
	Comments     []string

	topology seq.Topology
	date     *seq.Date

	sequence   coa.Cell[[]byte, *host.Bytes]
	references coa.Cell[[]seq.Reference, *host.List[*Reference]]
	features   coa.Cell[[]seq.Feature, *host.List[*Feature]]
	source     *coa.Cell[seq.Source, *Source]
	contig     *coa.Cell[seq.Location, Location]

	session *host.Interner
}

// NewRecord creates a host-constructed record with the division defaulted to
// "UNK" and empty reference and feature lists. A nil sequence becomes an
// empty byte array.
func NewRecord(sequence *host.Bytes) *Record {
	r := &Record{Division: "UNK"}
	if sequence == nil {
		sequence = host.NewBytes(nil)
	}
	r.sequence.SetShared(sequence)
	r.references.SetShared(host.NewList[*Reference]())
	r.features.SetShared(host.NewList[*Feature]())
	return r
}

// FromSeq wraps a freshly parsed native record. All collections start owned;
// session scopes the string interner used if they later materialize.
func FromSeq(s seq.Seq, session *host.Interner) *Record {
	r := &Record{
		Name:         s.Name,
		Length:       s.Length,
		Unit:         s.Unit,
		MoleculeType: s.MoleculeType,
		Division:     s.Division,
		Definition:   s.Definition,
		Accession:    s.Accession,
		Version:      s.Version,
		DBLink:       s.DBLink,
		Keywords:     s.Keywords,
		Comments:     s.Comments,
		topology:     s.Topology,
		date:         s.Date,
		session:      session,
	}
	r.sequence = coa.Own[[]byte, *host.Bytes](s.Sequence)
	r.references = coa.Own[[]seq.Reference, *host.List[*Reference]](s.References)
	r.features = coa.Own[[]seq.Feature, *host.List[*Feature]](s.Features)
	if s.Source != nil {
		c := coa.Own[seq.Source, *Source](*s.Source)
		r.source = &c
	}
	if s.Contig != nil {
		c := coa.Own[seq.Location, Location](s.Contig)
		r.contig = &c
	}
	return r
}

// Seq extracts the record back to its native form, reading through every
// shared cell so host-side mutations are reflected. Cells that were never
// materialized are cloned without touching the host heap.
func (r *Record) Seq() (seq.Seq, error) {
	out := seq.Seq{
		Name:         r.Name,
		Unit:         r.Unit,
		MoleculeType: r.MoleculeType,
		Division:     r.Division,
		Definition:   r.Definition,
		Accession:    r.Accession,
		Version:      r.Version,
		DBLink:       r.DBLink,
		Keywords:     r.Keywords,
		Topology:     r.topology,
	}
	if r.Length != nil {
		n := *r.Length
		out.Length = &n
	}
	if r.date != nil {
		d := *r.date
		out.Date = &d
	}
	if r.Comments != nil {
		out.Comments = append([]string(nil), r.Comments...)
	}

	data, err := r.sequence.Owned(codecBytes)
	if err != nil {
		return seq.Seq{}, err
	}
	out.Sequence = data

	refs, err := r.references.Owned(codecReferences)
	if err != nil {
		return seq.Seq{}, err
	}
	out.References = refs

	feats, err := r.features.Owned(codecFeatures)
	if err != nil {
		return seq.Seq{}, err
	}
	out.Features = feats

	if r.source != nil {
		src, err := r.source.Owned(codecSource)
		if err != nil {
			return seq.Seq{}, err
		}
		out.Source = &src
	}
	if r.contig != nil {
		loc, err := r.contig.Owned(codecLocation)
		if err != nil {
			return seq.Seq{}, err
		}
		out.Contig = loc
	}
	return out, nil
}

// Circular reports whether the record topology is circular.
func (r *Record) Circular() bool {
	return r.topology == seq.Circular
}

// SetCircular sets the record topology.
func (r *Record) SetCircular(circular bool) {
	if circular {
		r.topology = seq.Circular
	} else {
		r.topology = seq.Linear
	}
}

// Date returns the LOCUS line date, if any.
func (r *Record) Date() (seq.Date, bool) {
	if r.date == nil {
		return seq.Date{}, false
	}
	return *r.date, true
}

// SetDate sets the LOCUS line date, rejecting impossible calendar values.
func (r *Record) SetDate(d seq.Date) error {
	if _, err := seq.NewDate(d.Year(), d.Month(), d.Day()); err != nil {
		return err
	}
	r.date = &d
	return nil
}

// ClearDate removes the LOCUS line date.
func (r *Record) ClearDate() {
	r.date = nil
}

// Sequence returns the shared sequence bytes, materializing them on first
// access. Later calls return the identical object; in-place edits through it
// are what the next Seq or dump sees.
func (r *Record) Sequence() (*host.Bytes, error) {
	return r.sequence.Shared(codecBytes, r.session)
}

// SetSequence replaces the sequence. A nil argument becomes an empty array.
func (r *Record) SetSequence(b *host.Bytes) {
	if b == nil {
		b = host.NewBytes(nil)
	}
	r.sequence.SetShared(b)
}

// Features returns the shared feature list, materializing it on first
// access.
func (r *Record) Features() (*host.List[*Feature], error) {
	return r.features.Shared(codecFeatures, r.session)
}

// SetFeatures replaces the feature list. A nil list becomes empty.
func (r *Record) SetFeatures(l *host.List[*Feature]) {
	if l == nil {
		l = host.NewList[*Feature]()
	}
	r.features.SetShared(l)
}

// References returns the shared reference list, materializing it on first
// access.
func (r *Record) References() (*host.List[*Reference], error) {
	return r.references.Shared(codecReferences, r.session)
}

// SetReferences replaces the reference list. A nil list becomes empty.
func (r *Record) SetReferences(l *host.List[*Reference]) {
	if l == nil {
		l = host.NewList[*Reference]()
	}
	r.references.SetShared(l)
}

// Source returns the shared source, or nil when the record has none.
func (r *Record) Source() (*Source, error) {
	if r.source == nil {
		return nil, nil
	}
	return r.source.Shared(codecSource, r.session)
}

// SetSource replaces the source. A nil argument removes it.
func (r *Record) SetSource(s *Source) {
	if s == nil {
		r.source = nil
		return
	}
	var c coa.Cell[seq.Source, *Source]
	c.SetShared(s)
	r.source = &c
}

// Contig returns the shared CONTIG location, or nil when the record has
// none.
func (r *Record) Contig() (Location, error) {
	if r.contig == nil {
		return nil, nil
	}
	return r.contig.Shared(codecLocation, r.session)
}

// SetContig replaces the CONTIG location. A nil argument removes it.
func (r *Record) SetContig(loc Location) {
	if loc == nil {
		r.contig = nil
		return
	}
	var c coa.Cell[seq.Location, Location]
	c.SetShared(loc)
	r.contig = &c
}
