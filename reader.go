package gbio

import (
	"io"

	"github.com/seqforge/gbio/flatfile"
	"github.com/seqforge/gbio/host"
	"github.com/seqforge/gbio/record"
)

// RecordReader is a forward-only cursor over a GenBank stream. It owns one
// string interner for its whole lifetime, so repeated feature kinds and
// qualifier keys across all yielded records share handles.
type RecordReader struct {
	r       *flatfile.Reader
	session *host.Interner
	closer  io.Closer
}

// Iter opens source for streaming. Source may be a file path, an io.Reader
// or a []byte buffer; Close releases the file when Iter opened one.
func Iter(source any) (*RecordReader, error) {
	stream, closer, err := openSource(source)
	if err != nil {
		return nil, err
	}
	return &RecordReader{
		r:       flatfile.NewReader(stream, flatfile.WithLogger(Logger())),
		session: host.NewInterner(),
		closer:  closer,
	}, nil
}

// Next pulls the next record. It returns io.EOF once the stream is
// exhausted; parse errors carry line numbers and I/O failures wrap the
// underlying cause. The cursor is not rewindable.
func (it *RecordReader) Next() (*record.Record, error) {
	s, err := it.r.Next()
	if err != nil {
		return nil, err
	}
	return record.FromSeq(s, it.session), nil
}

// Close releases the underlying file, when Iter opened one.
func (it *RecordReader) Close() error {
	if it.closer != nil {
		return it.closer.Close()
	}
	return nil
}
