package record

import (
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/seq"
)

// Source is the host organism descriptor. An empty Organism means the
// record carried no ORGANISM line.
type Source struct {
	Name     string
	Organism string
}

// NewSource creates a source with the given SOURCE line text.
func NewSource(name string) *Source {
	return &Source{Name: name}
}

type sourceCodec struct{}

func (sourceCodec) Convert(native seq.Source, _ *host.Interner) (*Source, error) {
	return &Source{Name: native.Name, Organism: native.Organism}, nil
}

func (sourceCodec) Extract(s *Source) (seq.Source, error) {
	return seq.Source{Name: s.Name, Organism: s.Organism}, nil
}

func (sourceCodec) Placeholder() seq.Source { return seq.Source{} }

func (sourceCodec) Clone(native seq.Source) seq.Source { return native }
