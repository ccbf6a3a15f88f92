package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/seq"
)

// ParseLocation reads one GenBank location expression, e.g. "complement(4..38)"
// or "join(<1..>206,300^301)". Positions are converted from the one-based
// inclusive file form to zero-based half-open spans.
func ParseLocation(s string) (seq.Location, error) {
	p := &locParser{src: s}
	loc, err := p.parseLocation()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing input %q in location", p.src[p.pos:])
	}
	return loc, nil
}

// FormatLocation renders a native location back to its file form.
func FormatLocation(loc seq.Location) (string, error) {
	switch l := loc.(type) {
	case seq.Range:
		var b strings.Builder
		if l.Before {
			b.WriteByte('<')
		}
		b.WriteString(strconv.FormatInt(l.Start+1, 10))
		b.WriteString("..")
		if l.After {
			b.WriteByte('>')
		}
		b.WriteString(strconv.FormatInt(l.End, 10))
		return b.String(), nil
	case seq.Between:
		return fmt.Sprintf("%d^%d", l.Start, l.End), nil
	case seq.Complement:
		inner, err := FormatLocation(l.Inner)
		if err != nil {
			return "", err
		}
		return "complement(" + inner + ")", nil
	case seq.Join:
		return formatGroup("join", l.Locations)
	case seq.Order:
		return formatGroup("order", l.Locations)
	case seq.Bond:
		return formatGroup("bond", l.Locations)
	case seq.OneOf:
		return formatGroup("one-of", l.Locations)
	case seq.External:
		if l.Inner == nil {
			return l.Accession, nil
		}
		inner, err := FormatLocation(l.Inner)
		if err != nil {
			return "", err
		}
		return l.Accession + ":" + inner, nil
	default:
		return "", errors.InvalidVariant(errors.PhaseWrite, nil, fmt.Sprintf("%T", loc))
	}
}

func formatGroup(name string, members []seq.Location) (string, error) {
	parts := make([]string, len(members))
	for i, m := range members {
		s, err := FormatLocation(m)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return name + "(" + strings.Join(parts, ",") + ")", nil
}

// locParser is a cursor over one location expression.
type locParser struct {
	src string
	pos int
}

func (p *locParser) errorf(format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindSyntax).
		Detail(format, args...).
		Build()
}

func (p *locParser) skipSpaces() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *locParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *locParser) expect(c byte) error {
	p.skipSpaces()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.errorf("expected %q at offset %d in location %q", string(c), p.pos, p.src)
	}
	p.pos++
	return nil
}

func (p *locParser) parseLocation() (seq.Location, error) {
	p.skipSpaces()

	switch {
	case p.hasKeyword("complement("):
		p.pos += len("complement(")
		inner, err := p.parseLocation()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return seq.Complement{Inner: inner}, nil
	case p.hasKeyword("join("):
		p.pos += len("join(")
		members, err := p.parseMembers()
		if err != nil {
			return nil, err
		}
		return seq.Join{Locations: members}, nil
	case p.hasKeyword("order("):
		p.pos += len("order(")
		members, err := p.parseMembers()
		if err != nil {
			return nil, err
		}
		return seq.Order{Locations: members}, nil
	case p.hasKeyword("bond("):
		p.pos += len("bond(")
		members, err := p.parseMembers()
		if err != nil {
			return nil, err
		}
		return seq.Bond{Locations: members}, nil
	case p.hasKeyword("one-of("):
		p.pos += len("one-of(")
		members, err := p.parseMembers()
		if err != nil {
			return nil, err
		}
		return seq.OneOf{Locations: members}, nil
	}

	if acc, ok := p.takeAccession(); ok {
		p.pos++ // the ':' matched by takeAccession
		inner, err := p.parseLocation()
		if err != nil {
			return nil, err
		}
		return seq.External{Accession: acc, Inner: inner}, nil
	}

	return p.parseSpan()
}

func (p *locParser) hasKeyword(kw string) bool {
	return strings.HasPrefix(p.src[p.pos:], kw)
}

func (p *locParser) parseMembers() ([]seq.Location, error) {
	var members []seq.Location
	for {
		m, err := p.parseLocation()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
		p.skipSpaces()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return members, nil
}

// takeAccession recognizes "ACC.1:" ahead of an external sub-location and
// consumes the accession up to (but not including) the colon.
func (p *locParser) takeAccession() (string, bool) {
	i := p.pos
	for i < len(p.src) && isAccessionByte(p.src[i]) {
		i++
	}
	if i == p.pos || i >= len(p.src) || p.src[i] != ':' {
		return "", false
	}
	// a bare number followed by ':' is not a valid accession
	if allDigits(p.src[p.pos:i]) {
		return "", false
	}
	acc := p.src[p.pos:i]
	p.pos = i
	return acc, true
}

func isAccessionByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' || c == '.' || c == '_' || c == '-'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// parseSpan reads the positional forms: "1..206", "<1..>206", "1^2" and the
// single-base "467" (a one-base range).
func (p *locParser) parseSpan() (seq.Location, error) {
	before := false
	if p.peek() == '<' {
		before = true
		p.pos++
	}
	start, err := p.parseNumber()
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(p.src[p.pos:], ".."):
		p.pos += 2
		after := false
		if p.peek() == '>' {
			after = true
			p.pos++
		}
		end, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return seq.Range{Start: start - 1, End: end, Before: before, After: after}, nil
	case p.peek() == '^':
		if before {
			return nil, p.errorf("unexpected '<' before a between-position in %q", p.src)
		}
		p.pos++
		end, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return seq.Between{Start: start, End: end}, nil
	default:
		if before {
			return nil, p.errorf("unexpected '<' before a single position in %q", p.src)
		}
		return seq.Range{Start: start - 1, End: start}, nil
	}
}

func (p *locParser) parseNumber() (int64, error) {
	p.skipSpaces()
	i := p.pos
	for i < len(p.src) && p.src[i] >= '0' && p.src[i] <= '9' {
		i++
	}
	if i == p.pos {
		return 0, p.errorf("expected a position at offset %d in location %q", p.pos, p.src)
	}
	n, err := strconv.ParseInt(p.src[p.pos:i], 10, 64)
	if err != nil {
		return 0, p.errorf("position out of range in location %q", p.src)
	}
	p.pos = i
	return n, nil
}
