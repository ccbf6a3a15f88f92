package flatfile

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/seq"
)

func mustDate(t *testing.T, year, month, day int) *seq.Date {
	t.Helper()
	d, err := seq.NewDate(year, month, day)
	if err != nil {
		t.Fatal(err)
	}
	return &d
}

func TestAminoAcidUnitRoundTrip(t *testing.T) {
	in := "LOCUS       AAA12345                 286 aa            linear PRI 01-APR-2024\n//\n"

	s, err := NewReader(strings.NewReader(in)).Next()
	if err != nil {
		t.Fatal(err)
	}
	if s.Unit != seq.AminoAcid {
		t.Errorf("unit = %v, want aa", s.Unit)
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf, Options{}).WriteRecord(s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), " 286 aa ") {
		t.Errorf("output lost the aa unit:\n%s", buf.String())
	}
}

func TestWriteMinimalRecord(t *testing.T) {
	translation := "M"
	s := seq.NewSeq()
	s.Name = "Test sequence"
	s.Date = mustDate(t, 2024, 4, 1)
	s.Source = &seq.Source{Name: "Testus organismae"}
	s.Sequence = []byte("ATGC")
	s.Features = []seq.Feature{
		{
			Kind:     "CDS",
			Location: seq.Range{Start: 0, End: 3},
			Qualifiers: []seq.Qualifier{
				{Key: "translation", Value: &translation},
			},
		},
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf, Options{}).WriteRecord(s); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"LOCUS       Test sequence              4 bp            linear UNK 01-APR-2024",
		"SOURCE      Testus organismae",
		"FEATURES             Location/Qualifiers",
		"     CDS             1..3",
		`                     /translation="M"`,
		"ORIGIN      ",
		"        1 ATGC",
		"//",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteLocusOptions(t *testing.T) {
	s := seq.NewSeq()
	s.Name = "Test sequence"
	s.Sequence = []byte("ATGC")

	var escaped bytes.Buffer
	if err := NewWriter(&escaped, Options{EscapeLocus: true}).WriteRecord(s); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(escaped.String(), "LOCUS       Test_sequence") {
		t.Errorf("escaped locus = %q", firstLine(escaped.String()))
	}

	long := seq.NewSeq()
	long.Name = strings.Repeat("N", 90)
	long.Sequence = []byte("ATGC")

	var truncated bytes.Buffer
	if err := NewWriter(&truncated, Options{TruncateLocus: true}).WriteRecord(long); err != nil {
		t.Fatal(err)
	}
	if got := firstLine(truncated.String()); len(got) != 79 {
		t.Errorf("truncated locus is %d columns, want 79", len(got))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func sampleRecord(t *testing.T) seq.Seq {
	t.Helper()
	length := 120
	locusTag := "tag_1"
	codon := "1"
	translation := strings.Repeat("MKV", 40)
	s := seq.NewSeq()
	s.Name = "TEST"
	s.Length = &length
	s.Topology = seq.Circular
	s.Date = mustDate(t, 2024, 4, 1)
	s.MoleculeType = "DNA"
	s.Division = "PLN"
	s.Definition = "A test record with enough prose in the definition line that the " +
		"writer has to wrap it across several continuation lines of output."
	s.Accession = "TEST"
	s.Version = "TEST.1"
	s.DBLink = "BioProject: PRJNA00000"
	s.Keywords = "testing; round trips"
	s.Source = &seq.Source{
		Name:     "Testus organismae",
		Organism: "Testus organismae Eukaryota; Viridiplantae; Streptophyta",
	}
	s.References = []seq.Reference{
		{
			Description: "1  (bases 1 to 120)",
			Authors:     "Doe,J. and Roe,R.",
			Consortium:  "Test Consortium",
			Title:       "Complete test of a synthetic record",
			Journal:     "J. Test. Biol. 1 (1), 1-2 (2024)",
			Pubmed:      "123456",
			Remark:      "Publication Status: Available-Online",
		},
	}
	s.Comments = []string{"A first comment", "A second comment"}
	s.Sequence = bytes.Repeat([]byte("acgtacgtac"), 12)
	s.Features = []seq.Feature{
		{
			Kind:     "source",
			Location: seq.Range{Start: 0, End: 120},
			Qualifiers: []seq.Qualifier{
				{Key: "organism", Value: &locusTag},
			},
		},
		{
			Kind:     "gene",
			Location: seq.Complement{Inner: seq.Range{Start: 9, End: 100, After: true}},
			Qualifiers: []seq.Qualifier{
				{Key: "locus_tag", Value: &locusTag},
				{Key: "pseudo"},
			},
		},
		{
			Kind: "CDS",
			Location: seq.Join{Locations: []seq.Location{
				seq.Range{Start: 9, End: 50},
				seq.Range{Start: 59, End: 100},
			}},
			Qualifiers: []seq.Qualifier{
				{Key: "codon_start", Value: &codon},
				{Key: "translation", Value: &translation},
			},
		},
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	want := sampleRecord(t)

	var buf bytes.Buffer
	if err := NewWriter(&buf, Options{}).WriteRecord(want); err != nil {
		t.Fatal(err)
	}

	r := NewReader(&buf)
	got, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, want)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("second Next = %v, want io.EOF", err)
	}
}

func TestMultipleRecords(t *testing.T) {
	first := sampleRecord(t)
	second := sampleRecord(t)
	second.Name = "TEST2"

	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	if err := w.WriteRecord(first); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRecord(second); err != nil {
		t.Fatal(err)
	}

	r := NewReader(&buf)
	var names []string
	for {
		s, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, s.Name)
	}
	if !reflect.DeepEqual(names, []string{"TEST", "TEST2"}) {
		t.Errorf("names = %v", names)
	}
}

func TestContigRecord(t *testing.T) {
	s := seq.NewSeq()
	s.Name = "TEST"
	s.Contig = seq.Join{Locations: []seq.Location{
		seq.External{Accession: "AY048670.1", Inner: seq.Range{Start: 0, End: 1320}},
	}}

	var buf bytes.Buffer
	if err := NewWriter(&buf, Options{}).WriteRecord(s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "CONTIG      join(AY048670.1:1..1320)") {
		t.Fatalf("output missing contig line:\n%s", buf.String())
	}

	got, err := NewReader(&buf).Next()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Contig, s.Contig) {
		t.Errorf("contig = %#v, want %#v", got.Contig, s.Contig)
	}
}

func TestTruncatedRecord(t *testing.T) {
	r := NewReader(strings.NewReader("LOCUS"))
	_, err := r.Next()
	if err == nil {
		t.Fatal("expected a syntax error for a truncated record")
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindSyntax {
		t.Errorf("err = %v, want kind syntax", err)
	}
}

func TestGarbageBeforeLocus(t *testing.T) {
	r := NewReader(strings.NewReader("NOT A RECORD\n"))
	_, err := r.Next()
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindSyntax {
		t.Errorf("err = %v, want kind syntax", err)
	}
	if e != nil && e.Line != 1 {
		t.Errorf("line = %d, want 1", e.Line)
	}
}

func TestBadFeatureLocation(t *testing.T) {
	text := strings.Join([]string{
		"LOCUS       TEST                       4 bp            linear UNK",
		"FEATURES             Location/Qualifiers",
		"     gene            not-a-location",
		"//",
		"",
	}, "\n")
	_, err := NewReader(strings.NewReader(text)).Next()
	if err == nil {
		t.Fatal("expected a syntax error for a bad location")
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindSyntax {
		t.Errorf("err = %v, want kind syntax", err)
	}
	if e != nil && e.Line != 3 {
		t.Errorf("line = %d, want 3", e.Line)
	}
}

type failingReader struct {
	data   []byte
	err    error
	served bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.served {
		f.served = true
		n := copy(p, f.data)
		return n, nil
	}
	return 0, f.err
}

func TestReadErrorPropagation(t *testing.T) {
	cause := errors.New(errors.PhaseIO, errors.KindIO).Detail("boom").Build()
	r := NewReader(&failingReader{data: []byte("LOCUS       TEST\n"), err: cause})

	_, err := r.Next()
	if err == nil {
		t.Fatal("expected the underlying read error to surface")
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want it to wrap the original cause", err)
	}
}

func TestEmptyStream(t *testing.T) {
	if _, err := NewReader(strings.NewReader("")).Next(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
	if _, err := NewReader(strings.NewReader("\n\n")).Next(); err != io.EOF {
		t.Errorf("blank stream err = %v, want io.EOF", err)
	}
}
