package seq

// Topology describes whether a sequence is linear or circular.
type Topology uint8

const (
	Linear Topology = iota
	Circular
)

func (t Topology) String() string {
	if t == Circular {
		return "circular"
	}
	return "linear"
}

// Unit is the length unit of a record, base pairs for nucleotide records
// and amino acids for protein records.
type Unit uint8

const (
	BasePair Unit = iota
	AminoAcid
)

func (u Unit) String() string {
	if u == AminoAcid {
		return "aa"
	}
	return "bp"
}

// Source is the organism a record was obtained from.
type Source struct {
	Name     string
	Organism string
}

// Reference is a bibliographic reference attached to a record.
type Reference struct {
	Description string
	Title       string
	Authors     string
	Consortium  string
	Journal     string
	Pubmed      string
	Remark      string
}

// Qualifier is a single key/optional-value annotation on a feature.
// A nil Value distinguishes a bare qualifier (/pseudo) from an empty one.
type Qualifier struct {
	Key   string
	Value *string
}

// Feature is an annotated region of a record.
type Feature struct {
	Kind       string
	Location   Location
	Qualifiers []Qualifier
}

// Clone returns a deep copy of the feature.
func (f Feature) Clone() Feature {
	out := Feature{Kind: f.Kind}
	if f.Location != nil {
		out.Location = f.Location.Clone()
	}
	if f.Qualifiers != nil {
		out.Qualifiers = make([]Qualifier, len(f.Qualifiers))
		for i, q := range f.Qualifiers {
			out.Qualifiers[i] = q.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the qualifier.
func (q Qualifier) Clone() Qualifier {
	out := Qualifier{Key: q.Key}
	if q.Value != nil {
		v := *q.Value
		out.Value = &v
	}
	return out
}

// CloneFeatures deep-copies a feature list.
func CloneFeatures(fs []Feature) []Feature {
	if fs == nil {
		return nil
	}
	out := make([]Feature, len(fs))
	for i, f := range fs {
		out[i] = f.Clone()
	}
	return out
}

// CloneQualifiers deep-copies a qualifier list.
func CloneQualifiers(qs []Qualifier) []Qualifier {
	if qs == nil {
		return nil
	}
	out := make([]Qualifier, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// Seq is one native GenBank entry.
type Seq struct {
	Name         string
	Topology     Topology
	Date         *Date
	Length       *int
	Unit         Unit
	MoleculeType string
	Division     string
	Definition   string
	Accession    string
	Version      string
	DBLink       string
	Keywords     string
	Source       *Source
	References   []Reference
	Comments     []string
	Sequence     []byte
	Contig       Location
	Features     []Feature
}

// NewSeq returns an empty record with the division defaulted to "UNK".
func NewSeq() Seq {
	return Seq{Division: "UNK"}
}
