package gbio

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/seqforge/gbio/errors"
	"github.com/seqforge/gbio/flatfile"
	"github.com/seqforge/gbio/record"
)

// Load reads every record from source, which may be a file path, an
// io.Reader or a []byte buffer. It aborts on the first malformed entry and
// returns no partial results.
func Load(source any) ([]*record.Record, error) {
	it, err := Iter(source)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []*record.Record
	for {
		rec, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// DumpOption adjusts flat-file serialization.
type DumpOption func(*flatfile.Options)

// EscapeLocus replaces whitespace in locus names with underscores.
func EscapeLocus() DumpOption {
	return func(o *flatfile.Options) {
		o.EscapeLocus = true
	}
}

// TruncateLocus caps LOCUS lines at 79 columns.
func TruncateLocus() DumpOption {
	return func(o *flatfile.Options) {
		o.TruncateLocus = true
	}
}

// Dump serializes records to dest. Records may be a single *record.Record, a
// slice of them, an iter.Seq of them, or an []any holding only records; dest
// may be a file path or an io.Writer. Every record is extracted through its cells first, so
// host-side mutations are always what lands in the output.
func Dump(records any, dest any, opts ...DumpOption) error {
	recs, err := collectRecords(records)
	if err != nil {
		return err
	}

	var options flatfile.Options
	for _, opt := range opts {
		opt(&options)
	}

	w, closer, err := openDest(dest)
	if err != nil {
		return err
	}

	fw := flatfile.NewWriter(w, options)
	for _, rec := range recs {
		s, err := rec.Seq()
		if err != nil {
			if closer != nil {
				closer.Close()
			}
			return err
		}
		if err := fw.WriteRecord(s); err != nil {
			if closer != nil {
				closer.Close()
			}
			return err
		}
	}

	if closer != nil {
		if err := closer.Close(); err != nil {
			return errors.IO(errors.PhaseDump, err)
		}
	}
	return nil
}

func collectRecords(records any) ([]*record.Record, error) {
	switch v := records.(type) {
	case *record.Record:
		if v == nil {
			return nil, dumpTypeError(records)
		}
		return []*record.Record{v}, nil
	case []*record.Record:
		for _, rec := range v {
			if rec == nil {
				return nil, dumpTypeError(rec)
			}
		}
		return v, nil
	case []any:
		out := make([]*record.Record, len(v))
		for i, item := range v {
			rec, ok := item.(*record.Record)
			if !ok || rec == nil {
				return nil, dumpTypeError(item)
			}
			out[i] = rec
		}
		return out, nil
	case iter.Seq[*record.Record]:
		var out []*record.Record
		for rec := range v {
			if rec == nil {
				return nil, dumpTypeError(rec)
			}
			out = append(out, rec)
		}
		return out, nil
	default:
		return nil, dumpTypeError(records)
	}
}

func dumpTypeError(got any) error {
	return errors.TypeMismatch(errors.PhaseDump, nil, fmt.Sprintf("%T", got),
		"*record.Record or a slice of them")
}

func openSource(source any) (io.Reader, io.Closer, error) {
	switch src := source.(type) {
	case string:
		f, err := os.Open(src)
		if err != nil {
			return nil, nil, errors.IO(errors.PhaseLoad, err)
		}
		return f, f, nil
	case []byte:
		return bytes.NewReader(src), nil, nil
	case io.Reader:
		return src, nil, nil
	default:
		return nil, nil, errors.TypeMismatch(errors.PhaseLoad, nil,
			fmt.Sprintf("%T", source), "file path, io.Reader or []byte")
	}
}

func openDest(dest any) (io.Writer, io.Closer, error) {
	switch d := dest.(type) {
	case string:
		f, err := os.Create(d)
		if err != nil {
			return nil, nil, errors.IO(errors.PhaseDump, err)
		}
		return f, f, nil
	case io.Writer:
		return d, nil, nil
	default:
		return nil, nil, errors.TypeMismatch(errors.PhaseDump, nil,
			fmt.Sprintf("%T", dest), "file path or io.Writer")
	}
}
