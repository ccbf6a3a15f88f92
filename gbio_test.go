package gbio

import (
	"bytes"
	"io"
	"iter"
	"os"
	"strings"
	"testing"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/record"
)

var minimalRecord = strings.Join([]string{
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

const geneRecord = `LOCUS       TEST                     206 bp            linear UNK
FEATURES             Location/Qualifiers
     gene            1..206
ORIGIN
//
`

func TestLoadMinimal(t *testing.T) {
	records, err := Load([]byte(geneRecord))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}

	rec := records[0]
	if rec.Name != "TEST" {
		t.Errorf("name = %q, want TEST", rec.Name)
	}
	if rec.Circular() {
		t.Error("record should be linear")
	}

	feats, err := rec.Features()
	if err != nil {
		t.Fatal(err)
	}
	if feats.Len() != 1 {
		t.Fatalf("features = %d, want 1", feats.Len())
	}
	f, _ := feats.At(0)
	kind, err := f.Kind()
	if err != nil {
		t.Fatal(err)
	}
	if kind.Value() != "gene" {
		t.Errorf("kind = %q, want gene", kind.Value())
	}
}

func TestLoadAbortsOnSyntaxError(t *testing.T) {
	text := geneRecord + "NOT A RECORD\n"
	records, err := Load([]byte(text))
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if records != nil {
		t.Errorf("expected no partial results, got %d records", len(records))
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindSyntax {
		t.Errorf("err = %v, want kind syntax", err)
	}
}

func TestLoadSourceTypes(t *testing.T) {
	if _, err := Load(42); err == nil {
		t.Error("expected a type mismatch for an int source")
	}

	_, err := Load("really/not/a/file/in/there")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("err = %v, want a wrapped *os.PathError", err)
	}
}

func TestIterStreamsRecords(t *testing.T) {
	it, err := Iter(strings.NewReader(geneRecord + "\n" + geneRecord))
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()

	first, err := it.Next()
	if err != nil {
		t.Fatal(err)
	}
	second, err := it.Next()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := it.Next(); err != io.EOF {
		t.Fatalf("third Next = %v, want io.EOF", err)
	}

	// one session interner spans the whole iterator
	f1, _ := mustFeatures(t, first).At(0)
	f2, _ := mustFeatures(t, second).At(0)
	k1, err := f1.Kind()
	if err != nil {
		t.Fatal(err)
	}
	k2, err := f2.Kind()
	if err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Error("kinds across records of one iterator should share a handle")
	}
}

func mustFeatures(t *testing.T, rec *record.Record) *host.List[*record.Feature] {
	t.Helper()
	feats, err := rec.Features()
	if err != nil {
		t.Fatal(err)
	}
	return feats
}

func TestIterSurfacesErrorAfterRecord(t *testing.T) {
	it, err := Iter(strings.NewReader(geneRecord + "NOT A RECORD\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()

	if _, err := it.Next(); err != nil {
		t.Fatalf("first Next = %v, want a record", err)
	}
	_, err = it.Next()
	if err == nil || err == io.EOF {
		t.Fatalf("second Next = %v, want a syntax error", err)
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindSyntax {
		t.Errorf("err = %v, want kind syntax", err)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	records, err := Load([]byte(minimalRecord))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Dump(records, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != minimalRecord {
		t.Errorf("dump output:\n%s\nwant:\n%s", buf.String(), minimalRecord)
	}
}

func TestDumpSingleRecord(t *testing.T) {
	records, err := Load([]byte(minimalRecord))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Dump(records[0], &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "LOCUS       Test sequence") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDumpReflectsMutation(t *testing.T) {
	records, err := Load([]byte(minimalRecord))
	if err != nil {
		t.Fatal(err)
	}
	rec := records[0]

	feats, err := rec.Features()
	if err != nil {
		t.Fatal(err)
	}
	f, _ := feats.At(0)
	quals, err := f.Qualifiers()
	if err != nil {
		t.Fatal(err)
	}
	q, _ := quals.At(0)
	edited := "MK"
	q.Value = &edited

	var buf bytes.Buffer
	if err := Dump(rec, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `/translation="MK"`) {
		t.Errorf("output missing edited qualifier:\n%s", buf.String())
	}
}

func TestDumpFromIterator(t *testing.T) {
	records, err := Load([]byte(minimalRecord))
	if err != nil {
		t.Fatal(err)
	}
	seq := func(yield func(*record.Record) bool) {
		for _, rec := range records {
			if !yield(rec) {
				return
			}
		}
	}

	var buf bytes.Buffer
	if err := Dump(iter.Seq[*record.Record](seq), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != minimalRecord {
		t.Errorf("dump output:\n%s\nwant:\n%s", buf.String(), minimalRecord)
	}
}

func TestDumpTypeErrors(t *testing.T) {
	var buf bytes.Buffer
	records, err := Load([]byte(minimalRecord))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		records any
		dest    any
	}{
		{"nil records", nil, &buf},
		{"nil element", []any{nil}, &buf},
		{"wrong element", []any{"record"}, &buf},
		{"nil dest", records, nil},
		{"int dest", records, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Dump(tt.records, tt.dest)
			var e *errors.Error
			if !errors.As(err, &e) || e.Kind != errors.KindTypeMismatch {
				t.Errorf("err = %v, want kind type_mismatch", err)
			}
		})
	}
}

func TestDumpToPath(t *testing.T) {
	records, err := Load([]byte(minimalRecord))
	if err != nil {
		t.Fatal(err)
	}

	path := t.TempDir() + "/out.gb"
	if err := Dump(records, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != minimalRecord {
		t.Errorf("file contents:\n%s", data)
	}

	if err := Dump(records, t.TempDir()); err == nil {
		t.Error("expected an error when the destination is a directory")
	}
}

func TestHostConstructedDump(t *testing.T) {
	rec := record.NewRecord(nil)
	rec.Name = "Fresh"

	var buf bytes.Buffer
	if err := Dump(rec, &buf); err != nil {
		t.Fatal(err)
	}
	want := "LOCUS       Fresh                      0 bp            linear UNK\n//\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
