package record

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

func sampleSeq() seq.Seq {
	length := 4
	date, _ := seq.NewDate(2024, 4, 1)
	locus := "test"
	s := seq.NewSeq()
	s.Name = "Test sequence"
	s.Length = &length
	s.Date = &date
	s.Definition = "Just a test"
	s.Accession = "TEST"
	s.Version = "TEST.1"
	s.Keywords = "testing"
	s.Source = &seq.Source{Name: "Test organism", Organism: "Eukaryota"}
	s.References = []seq.Reference{{Description: "1  (bases 1 to 4)", Title: "A test"}}
	s.Comments = []string{"A first comment"}
	s.Sequence = []byte("acgt")
	s.Features = []seq.Feature{
		{
			Kind:     "gene",
			Location: seq.Range{Start: 0, End: 4},
			Qualifiers: []seq.Qualifier{
				{Key: "locus_tag", Value: &locus},
				{Key: "pseudo"},
			},
		},
		{
			Kind:     "gene",
			Location: seq.Complement{Inner: seq.Range{Start: 1, End: 3}},
		},
	}
	return s
}

func TestRoundTripUntouched(t *testing.T) {
	native := sampleSeq()

	back, err := FromSeq(sampleSeq(), host.NewInterner()).Seq()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, native) {
		t.Errorf("round trip = %#v, want %#v", back, native)
	}
}

func TestSeqRejectsNilFeature(t *testing.T) {
	r := FromSeq(sampleSeq(), host.NewInterner())
	feats, err := r.Features()
	if err != nil {
		t.Fatal(err)
	}
	feats.Append(nil)

	_, err = r.Seq()
	if err == nil {
		t.Fatal("expected an error for a nil feature")
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindInvalidData {
		t.Errorf("err = %v, want kind invalid_data", err)
	}
}

func TestSeqRejectsNilQualifier(t *testing.T) {
	r := FromSeq(sampleSeq(), host.NewInterner())
	feats, err := r.Features()
	if err != nil {
		t.Fatal(err)
	}
	f, _ := feats.At(0)
	quals, err := f.Qualifiers()
	if err != nil {
		t.Fatal(err)
	}
	quals.Append(nil)

	_, err = r.Seq()
	if err == nil {
		t.Fatal("expected an error for a nil qualifier")
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindInvalidData {
		t.Errorf("err = %v, want kind invalid_data", err)
	}
}

func TestSequenceHandleStable(t *testing.T) {
	r := FromSeq(sampleSeq(), host.NewInterner())

	first, err := r.Sequence()
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Sequence()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("repeated access should return the identical handle")
	}
}

func TestSequenceMutationVisible(t *testing.T) {
	r := FromSeq(sampleSeq(), host.NewInterner())

	b, err := r.Sequence()
	if err != nil {
		t.Fatal(err)
	}
	b.Append('a', 'c')

	back, err := r.Seq()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back.Sequence, []byte("acgtac")) {
		t.Errorf("sequence = %q, want acgtac", back.Sequence)
	}
}

func TestFeatureKindInterned(t *testing.T) {
	r := FromSeq(sampleSeq(), host.NewInterner())

	feats, err := r.Features()
	if err != nil {
		t.Fatal(err)
	}
	if feats.Len() != 2 {
		t.Fatalf("features = %d, want 2", feats.Len())
	}
	first, _ := feats.At(0)
	second, _ := feats.At(1)

	k1, err := first.Kind()
	if err != nil {
		t.Fatal(err)
	}
	k2, err := second.Kind()
	if err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Error("two features with the same kind should share one interned handle")
	}
	if k1.Value() != "gene" {
		t.Errorf("kind = %q, want gene", k1.Value())
	}
}

func TestQualifierMutationVisible(t *testing.T) {
	r := FromSeq(sampleSeq(), host.NewInterner())

	feats, err := r.Features()
	if err != nil {
		t.Fatal(err)
	}
	f, _ := feats.At(0)
	quals, err := f.Qualifiers()
	if err != nil {
		t.Fatal(err)
	}
	q, _ := quals.At(0)
	edited := "edited"
	q.Value = &edited

	back, err := r.Seq()
	if err != nil {
		t.Fatal(err)
	}
	got := back.Features[0].Qualifiers[0]
	if got.Value == nil || *got.Value != "edited" {
		t.Errorf("qualifier value = %v, want edited", got.Value)
	}
}

func TestFeatureListMutationVisible(t *testing.T) {
	session := host.NewInterner()
	r := FromSeq(sampleSeq(), session)

	feats, err := r.Features()
	if err != nil {
		t.Fatal(err)
	}
	added := NewFeature(session.Intern("CDS"), NewRange(0, 3))
	feats.Append(added)

	back, err := r.Seq()
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Features) != 3 {
		t.Fatalf("features = %d, want 3", len(back.Features))
	}
	if back.Features[2].Kind != "CDS" {
		t.Errorf("appended kind = %q, want CDS", back.Features[2].Kind)
	}
}

func TestNewRecordDefaults(t *testing.T) {
	r := NewRecord(nil)

	if r.Division != "UNK" {
		t.Errorf("division = %q, want UNK", r.Division)
	}
	b, err := r.Sequence()
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("sequence length = %d, want 0", b.Len())
	}
	feats, err := r.Features()
	if err != nil {
		t.Fatal(err)
	}
	if feats.Len() != 0 {
		t.Errorf("features = %d, want none", feats.Len())
	}
	if r.Circular() {
		t.Error("new records should be linear")
	}
	if _, ok := r.Date(); ok {
		t.Error("new records should carry no date")
	}
}

func TestSetDateRejectsInvalid(t *testing.T) {
	r := NewRecord(nil)
	if err := r.SetDate(seq.Date{}); err == nil {
		t.Error("the zero date should be rejected")
	}

	d, err := seq.NewDate(2024, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.SetDate(d); err != nil {
		t.Fatal(err)
	}
	got, ok := r.Date()
	if !ok || got != d {
		t.Errorf("date = %v (%v), want %v", got, ok, d)
	}
}

func TestSourceOptional(t *testing.T) {
	r := NewRecord(nil)

	src, err := r.Source()
	if err != nil {
		t.Fatal(err)
	}
	if src != nil {
		t.Fatal("a new record should have no source")
	}

	set := NewSource("Test organism")
	r.SetSource(set)
	src, err = r.Source()
	if err != nil {
		t.Fatal(err)
	}
	if src != set {
		t.Error("Source should return the handle passed to SetSource")
	}

	r.SetSource(nil)
	src, err = r.Source()
	if err != nil {
		t.Fatal(err)
	}
	if src != nil {
		t.Error("SetSource(nil) should clear the source")
	}
}

func TestContigOptional(t *testing.T) {
	r := NewRecord(nil)

	loc, err := r.Contig()
	if err != nil {
		t.Fatal(err)
	}
	if loc != nil {
		t.Fatal("a new record should have no contig")
	}

	set := NewJoin(NewExternal("XX000001.1", NewRange(0, 150)))
	r.SetContig(set)
	loc, err = r.Contig()
	if err != nil {
		t.Fatal(err)
	}
	if loc != set {
		t.Error("Contig should return the handle passed to SetContig")
	}
}

func TestTypedListValidation(t *testing.T) {
	if _, err := FeaturesOf(NewFeature(host.NewStr("gene"), NewRange(0, 4)), 7); err == nil {
		t.Error("expected a type mismatch for an int feature")
	}
	if _, err := ReferencesOf(NewReference("1  (bases 1 to 4)"), "REFERENCE"); err == nil {
		t.Error("expected a type mismatch for a string reference")
	}
	if _, err := QualifiersOf(NewQualifier(host.NewStr("pseudo"), nil), 3.5); err == nil {
		t.Error("expected a type mismatch for a float qualifier")
	}
}
