package flatfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/seq"
)

const lineWidth = 79

// Options controls flat-file serialization.
type Options struct {
	// EscapeLocus replaces whitespace in the locus name with underscores so
	// the LOCUS line stays parseable by field-splitting tools.
	EscapeLocus bool
	// TruncateLocus caps the LOCUS line at 79 columns.
	TruncateLocus bool
}

// Writer serializes native records as GenBank flat-file text.
type Writer struct {
	w    io.Writer
	opts Options
}

// NewWriter creates a writer targeting w.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// WriteRecord serializes one record, ending with the // terminator line.
func (w *Writer) WriteRecord(s seq.Seq) error {
	var b strings.Builder

	w.writeLocus(&b, s)
	writeField(&b, "DEFINITION", s.Definition)
	writeField(&b, "ACCESSION", s.Accession)
	writeField(&b, "VERSION", s.Version)
	writeField(&b, "DBLINK", s.DBLink)
	writeField(&b, "KEYWORDS", s.Keywords)
	if s.Source != nil {
		writeField(&b, "SOURCE", s.Source.Name)
		writeField(&b, "  ORGANISM", s.Source.Organism)
	}
	for _, ref := range s.References {
		writeField(&b, "REFERENCE", ref.Description)
		writeField(&b, "  AUTHORS", ref.Authors)
		writeField(&b, "  CONSRTM", ref.Consortium)
		writeField(&b, "  TITLE", ref.Title)
		writeField(&b, "  JOURNAL", ref.Journal)
		writeField(&b, "   PUBMED", ref.Pubmed)
		writeField(&b, "  REMARK", ref.Remark)
	}
	for _, comment := range s.Comments {
		writeField(&b, "COMMENT", comment)
	}

	if len(s.Features) > 0 {
		b.WriteString("FEATURES             Location/Qualifiers\n")
		for _, f := range s.Features {
			if err := writeFeature(&b, f); err != nil {
				return err
			}
		}
	}

	if s.Contig != nil {
		text, err := FormatLocation(s.Contig)
		if err != nil {
			return err
		}
		writeField(&b, "CONTIG", text)
	}

	if len(s.Sequence) > 0 {
		b.WriteString("ORIGIN      \n")
		writeSequence(&b, s.Sequence)
	}
	b.WriteString("//\n")

	if _, err := io.WriteString(w.w, b.String()); err != nil {
		return errors.IO(errors.PhaseIO, err)
	}
	return nil
}

// writeLocus lays out the header line: the name and length share a 28-column
// field with the length right-justified, then the unit, a 10-column molecule
// type, topology, division and date separated by single spaces.
func (w *Writer) writeLocus(b *strings.Builder, s seq.Seq) {
	name := s.Name
	if w.opts.EscapeLocus {
		name = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return '_'
			}
			return r
		}, name)
	}

	length := len(s.Sequence)
	if s.Length != nil {
		length = *s.Length
	}
	lengthStr := strconv.Itoa(length)

	line := "LOCUS       "
	if pad := 28 - len(name) - len(lengthStr); pad > 0 {
		line += name + strings.Repeat(" ", pad) + lengthStr
	} else {
		line += name + " " + lengthStr
	}
	line += " " + s.Unit.String()
	line += fmt.Sprintf(" %-10s", s.MoleculeType)
	line += " " + s.Topology.String()
	if s.Division != "" {
		line += " " + s.Division
	}
	if s.Date != nil {
		line += " " + s.Date.String()
	}

	if w.opts.TruncateLocus && len(line) > lineWidth {
		line = line[:lineWidth]
	}
	b.WriteString(line)
	b.WriteByte('\n')
}

// writeField emits one keyword with its value wrapped into the 12-column
// layout. Empty values emit nothing.
func writeField(b *strings.Builder, keyword, value string) {
	if value == "" {
		return
	}
	lines := wrapText(value, lineWidth-keywordWidth, false)
	fmt.Fprintf(b, "%-12s%s\n", keyword, lines[0])
	for _, line := range lines[1:] {
		b.WriteString(strings.Repeat(" ", keywordWidth))
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func writeFeature(b *strings.Builder, f seq.Feature) error {
	text, err := FormatLocation(f.Location)
	if err != nil {
		return err
	}
	indent := strings.Repeat(" ", locationCol)

	locLines := wrapLocation(text, lineWidth-locationCol)
	fmt.Fprintf(b, "     %-16s%s\n", f.Kind, locLines[0])
	for _, line := range locLines[1:] {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for _, q := range f.Qualifiers {
		hardBreak := q.Key == "translation"
		for _, line := range wrapText(renderQualifier(q), lineWidth-locationCol, hardBreak) {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return nil
}

func renderQualifier(q seq.Qualifier) string {
	if q.Value == nil {
		return "/" + q.Key
	}
	v := *q.Value
	if allDigits(v) {
		return "/" + q.Key + "=" + v
	}
	return "/" + q.Key + `="` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func writeSequence(b *strings.Builder, data []byte) {
	for i := 0; i < len(data); i += 60 {
		end := i + 60
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		fmt.Fprintf(b, "%9d", i+1)
		for j := 0; j < len(chunk); j += 10 {
			je := j + 10
			if je > len(chunk) {
				je = len(chunk)
			}
			b.WriteByte(' ')
			b.Write(chunk[j:je])
		}
		b.WriteByte('\n')
	}
}

// wrapText breaks text into lines of at most width columns, at spaces when
// possible. With hardBreak set it cuts at exactly width, which keeps
// translations dense.
func wrapText(text string, width int, hardBreak bool) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	for len(text) > width {
		cut := width
		if !hardBreak {
			if i := strings.LastIndexByte(text[:width+1], ' '); i > 0 {
				cut = i
			}
		}
		lines = append(lines, strings.TrimRight(text[:cut], " "))
		text = strings.TrimLeft(text[cut:], " ")
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}
	return lines
}

// wrapLocation breaks a location expression after commas.
func wrapLocation(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	for len(text) > width {
		cut := strings.LastIndexByte(text[:width], ',')
		if cut < 0 {
			break
		}
		lines = append(lines, text[:cut+1])
		text = text[cut+1:]
	}
	lines = append(lines, text)
	return lines
}
