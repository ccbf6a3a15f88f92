// Package gbio reads and writes GenBank flat files, exposing each entry as a
// lazily materialized Record.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	gbio/         Root package with Load, Iter and Dump entry points
//	├── record/   Host-visible Record, Feature, Qualifier and Location graph
//	├── seq/      Native value model produced by the parser
//	├── flatfile/ GenBank text scanner and serializer
//	├── coa/      Owned-or-shared cells backing lazy materialization
//	├── host/     Shared mutable handle types and the string interner
//	└── errors/   Structured error types for diagnostics
//
// # Quick Start
//
// Load every record from a file:
//
//	records, err := gbio.Load("genome.gb")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Stream a large file one record at a time:
//
//	it, err := gbio.Iter("genome.gb")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer it.Close()
//	for {
//		rec, err := it.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(rec.Name)
//	}
//
// Write records back out:
//
//	err = gbio.Dump(records, "out.gb", gbio.EscapeLocus())
//
// Records convert lazily: sequence bytes, features and references stay in
// their parsed form until first accessed, so loading and re-serializing a
// file does not build the host object graph at all.
package gbio
