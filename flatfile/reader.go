package flatfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/seq"
)

const (
	keywordWidth  = 12
	featureIndent = 5
	locationCol   = 21
)

// Reader is a forward-only scanner over a GenBank flat-file stream. Next
// yields one native record per entry and io.EOF once the stream is done.
type Reader struct {
	br     *bufio.Reader
	log    *zap.Logger
	line   int
	pushed []string
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(log *zap.Logger) ReaderOption {
	return func(r *Reader) {
		r.log = log
	}
}

// NewReader creates a reader over src.
func NewReader(src io.Reader, opts ...ReaderOption) *Reader {
	r := &Reader{br: bufio.NewReader(src), log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Line returns the one-based number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) readLine() (string, error) {
	if n := len(r.pushed); n > 0 {
		line := r.pushed[n-1]
		r.pushed = r.pushed[:n-1]
		r.line++
		return line, nil
	}
	line, err := r.br.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line == "" {
				return "", io.EOF
			}
			// final line without a newline
		} else {
			return "", errors.IO(errors.PhaseIO, err)
		}
	}
	r.line++
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Reader) unread(line string) {
	r.pushed = append(r.pushed, line)
	r.line--
}

func (r *Reader) syntaxf(format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindSyntax).
		Line(r.line).
		Detail(format, args...).
		Build()
}

// Next reads the next record. It returns io.EOF once the stream is
// exhausted; any other error is a syntax error with a line number or a
// wrapped I/O failure.
func (r *Reader) Next() (seq.Seq, error) {
	// skip blank separator lines between records
	var first string
	for {
		line, err := r.readLine()
		if err != nil {
			return seq.Seq{}, err
		}
		if strings.TrimSpace(line) != "" {
			first = line
			break
		}
	}

	if !strings.HasPrefix(first, "LOCUS") {
		return seq.Seq{}, r.syntaxf("expected LOCUS, found %q", firstWord(first))
	}

	out := seq.NewSeq()
	if err := r.parseLocus(first, &out); err != nil {
		return seq.Seq{}, err
	}

	for {
		line, err := r.readLine()
		if err == io.EOF {
			return seq.Seq{}, r.syntaxf("unexpected end of file inside record %q", out.Name)
		}
		if err != nil {
			return seq.Seq{}, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			return out, nil
		}

		kw, rest := splitKeyword(line)
		switch kw {
		case "DEFINITION":
			out.Definition, err = r.readWrapped(rest)
		case "ACCESSION":
			out.Accession, err = r.readWrapped(rest)
		case "VERSION":
			out.Version, err = r.readWrapped(rest)
		case "DBLINK":
			out.DBLink, err = r.readWrapped(rest)
		case "KEYWORDS":
			out.Keywords, err = r.readWrapped(rest)
		case "SOURCE":
			err = r.parseSource(rest, &out)
		case "REFERENCE":
			err = r.parseReference(rest, &out)
		case "COMMENT":
			var comment string
			comment, err = r.readWrapped(rest)
			if err == nil {
				out.Comments = append(out.Comments, comment)
			}
		case "FEATURES":
			err = r.parseFeatures(&out)
		case "CONTIG":
			err = r.parseContig(rest, &out)
		case "ORIGIN":
			err = r.parseOrigin(&out)
		case "BASE COUNT":
			r.log.Debug("skipping base count line", zap.Int("line", r.line))
		default:
			r.log.Debug("skipping unrecognized keyword",
				zap.String("keyword", kw),
				zap.Int("line", r.line))
			_, err = r.readWrapped(rest)
		}
		if err != nil {
			return seq.Seq{}, err
		}
	}
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func splitKeyword(line string) (string, string) {
	if len(line) <= keywordWidth {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:keywordWidth]), strings.TrimSpace(line[keywordWidth:])
}

// isContinuation reports whether line is a wrapped continuation of the
// previous keyword, i.e. blank through the keyword column.
func isContinuation(line string) bool {
	if len(line) <= keywordWidth {
		return false
	}
	return strings.TrimSpace(line[:keywordWidth]) == ""
}

// readWrapped joins a keyword's value with any continuation lines.
func (r *Reader) readWrapped(first string) (string, error) {
	value := first
	for {
		line, err := r.readLine()
		if err == io.EOF {
			return value, nil
		}
		if err != nil {
			return "", err
		}
		if !isContinuation(line) {
			r.unread(line)
			return value, nil
		}
		part := strings.TrimSpace(line[keywordWidth:])
		if value == "" {
			value = part
		} else {
			value += " " + part
		}
	}
}

// parseLocus decodes the LOCUS line: name, length with its unit, then the
// optional molecule type, topology, division and date fields.
func (r *Reader) parseLocus(line string, out *seq.Seq) error {
	rest := ""
	if len(line) > keywordWidth {
		rest = line[keywordWidth:]
	}

	toks := fieldsWithOffsets(rest)

	// locate "<digits> bp" (or aa) to split the name from the tail
	unit := -1
	for i := 0; i+1 < len(toks); i++ {
		if allDigits(toks[i].text) && (toks[i+1].text == "bp" || toks[i+1].text == "aa") {
			unit = i
			break
		}
	}
	if unit < 0 {
		out.Name = strings.TrimSpace(rest)
		return nil
	}

	out.Name = strings.TrimSpace(rest[:toks[unit].off])
	n, err := strconv.Atoi(toks[unit].text)
	if err != nil {
		return r.syntaxf("malformed LOCUS length %q", toks[unit].text)
	}
	out.Length = &n
	if toks[unit+1].text == "aa" {
		out.Unit = seq.AminoAcid
	}

	tail := make([]string, 0, 4)
	for _, t := range toks[unit+2:] {
		tail = append(tail, t.text)
	}

	i := 0
	isTopology := func(s string) bool { return s == "linear" || s == "circular" }
	if i < len(tail) && !isTopology(tail[i]) && !looksLikeDate(tail[i]) {
		out.MoleculeType = tail[i]
		i++
	}
	if i < len(tail) && isTopology(tail[i]) {
		if tail[i] == "circular" {
			out.Topology = seq.Circular
		}
		i++
	}
	if i < len(tail) && !looksLikeDate(tail[i]) {
		out.Division = tail[i]
		i++
	}
	if i < len(tail) {
		d, err := seq.ParseDate(tail[i])
		if err != nil {
			return r.syntaxf("malformed LOCUS date %q", tail[i])
		}
		out.Date = &d
	}
	return nil
}

type offsetField struct {
	text string
	off  int
}

func fieldsWithOffsets(s string) []offsetField {
	var out []offsetField
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		start := i
		for i < len(s) && s[i] != ' ' {
			i++
		}
		if i > start {
			out = append(out, offsetField{text: s[start:i], off: start})
		}
	}
	return out
}

func looksLikeDate(s string) bool {
	_, err := seq.ParseDate(s)
	return err == nil
}

func (r *Reader) parseSource(rest string, out *seq.Seq) error {
	name, err := r.readWrapped(rest)
	if err != nil {
		return err
	}
	src := seq.Source{Name: name}

	line, err := r.readLine()
	if err == io.EOF {
		out.Source = &src
		return nil
	}
	if err != nil {
		return err
	}
	if kw, orgRest := splitKeyword(line); strings.HasPrefix(line, " ") && kw == "ORGANISM" {
		src.Organism, err = r.readWrapped(orgRest)
		if err != nil {
			return err
		}
	} else {
		r.unread(line)
	}
	out.Source = &src
	return nil
}

func (r *Reader) parseReference(rest string, out *seq.Seq) error {
	desc, err := r.readWrapped(rest)
	if err != nil {
		return err
	}
	ref := seq.Reference{Description: desc}

	for {
		line, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if !strings.HasPrefix(line, " ") || isContinuation(line) {
			r.unread(line)
			break
		}
		kw, sub := splitKeyword(line)
		value, err := r.readWrapped(sub)
		if err != nil {
			return err
		}
		switch kw {
		case "AUTHORS":
			ref.Authors = value
		case "CONSRTM":
			ref.Consortium = value
		case "TITLE":
			ref.Title = value
		case "JOURNAL":
			ref.Journal = value
		case "PUBMED":
			ref.Pubmed = value
		case "REMARK":
			ref.Remark = value
		default:
			// MEDLINE and friends from older releases
			r.log.Debug("skipping reference field",
				zap.String("keyword", kw),
				zap.Int("line", r.line))
		}
	}
	out.References = append(out.References, ref)
	return nil
}

func (r *Reader) parseFeatures(out *seq.Seq) error {
	var (
		kind     string
		locText  string
		locLine  int
		quals    []seq.Qualifier
		inTable  bool
		openQual *seq.Qualifier
		openBuf  strings.Builder
	)

	closeQualifier := func() {
		if openQual == nil {
			return
		}
		v := strings.ReplaceAll(openBuf.String(), `""`, `"`)
		openQual.Value = &v
		quals = append(quals, *openQual)
		openQual = nil
		openBuf.Reset()
	}

	flush := func() error {
		if !inTable {
			return nil
		}
		closeQualifier()
		loc, err := ParseLocation(locText)
		if err != nil {
			var e *errors.Error
			if errors.As(err, &e) {
				e.Line = locLine
			}
			return err
		}
		out.Features = append(out.Features, seq.Feature{
			Kind:       kind,
			Location:   loc,
			Qualifiers: quals,
		})
		inTable = false
		quals = nil
		return nil
	}

	for {
		line, err := r.readLine()
		if err == io.EOF {
			return flush()
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, " ") {
			if err := flush(); err != nil {
				return err
			}
			r.unread(line)
			return nil
		}

		indent := leadingSpaces(line)
		trimmed := strings.TrimSpace(line)

		switch {
		case indent == featureIndent:
			if err := flush(); err != nil {
				return err
			}
			fields := strings.SplitN(trimmed, " ", 2)
			kind = fields[0]
			locText = ""
			if len(fields) > 1 {
				locText = strings.TrimSpace(fields[1])
			}
			locLine = r.line
			inTable = true
		case !inTable:
			return r.syntaxf("feature table line %q outside a feature", trimmed)
		case openQual != nil:
			// inside a multi-line quoted value
			if closed := strings.HasSuffix(trimmed, `"`) && !strings.HasSuffix(trimmed, `""`); closed {
				appendQualPart(&openBuf, openQual.Key, strings.TrimSuffix(trimmed, `"`))
				closeQualifier()
			} else {
				appendQualPart(&openBuf, openQual.Key, trimmed)
			}
		case strings.HasPrefix(trimmed, "/"):
			q, open, err := r.parseQualifier(trimmed)
			if err != nil {
				return err
			}
			if open {
				openQual = &q
				openBuf.WriteString(*q.Value)
				openQual.Value = nil
			} else {
				quals = append(quals, q)
			}
		default:
			// wrapped location expression
			locText += trimmed
		}
	}
}

// parseQualifier decodes one "/key", "/key=value" or "/key="quoted..."
// line. It reports open=true when a quoted value continues on later lines.
func (r *Reader) parseQualifier(trimmed string) (q seq.Qualifier, open bool, err error) {
	body := trimmed[1:]
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		return seq.Qualifier{Key: body}, false, nil
	}
	q.Key = body[:eq]
	raw := body[eq+1:]

	if !strings.HasPrefix(raw, `"`) {
		v := raw
		q.Value = &v
		return q, false, nil
	}

	inner := raw[1:]
	if strings.HasSuffix(inner, `"`) && !strings.HasSuffix(inner, `""`) && len(inner) >= 1 {
		v := strings.ReplaceAll(strings.TrimSuffix(inner, `"`), `""`, `"`)
		q.Value = &v
		return q, false, nil
	}
	q.Value = &inner
	return q, true, nil
}

// appendQualPart joins wrapped qualifier value lines. Translations are
// rejoined without separators; everything else gets the space the wrap
// replaced.
func appendQualPart(b *strings.Builder, key, part string) {
	if b.Len() > 0 && key != "translation" {
		b.WriteByte(' ')
	}
	b.WriteString(part)
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

func (r *Reader) parseContig(rest string, out *seq.Seq) error {
	text, err := r.readWrapped(rest)
	if err != nil {
		return err
	}
	startLine := r.line
	loc, err := ParseLocation(strings.ReplaceAll(text, " ", ""))
	if err != nil {
		var e *errors.Error
		if errors.As(err, &e) {
			e.Line = startLine
		}
		return err
	}
	out.Contig = loc
	return nil
}

func (r *Reader) parseOrigin(out *seq.Seq) error {
	for {
		line, err := r.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !strings.HasPrefix(line, " ") {
			r.unread(line)
			return nil
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c == ' ' || c >= '0' && c <= '9' {
				continue
			}
			out.Sequence = append(out.Sequence, c)
		}
	}
}
