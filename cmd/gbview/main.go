package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/seqforge/gbio"
	"github.com/seqforge/gbio/record"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a GenBank flat file")
		outFile     = flag.String("out", "", "Re-serialize records to this path")
		escape      = flag.Bool("escape-locus", false, "Escape whitespace in locus names on output")
		truncate    = flag.Bool("truncate-locus", false, "Truncate LOCUS lines to 79 columns on output")
		interactive = flag.Bool("i", false, "Interactive browser with TUI")
		debug       = flag.Bool("debug", false, "Verbose parser diagnostics on stderr")
	)
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: gbview -in <file.gb> [-out <file.gb>] [-escape-locus] [-truncate-locus]")
		fmt.Fprintln(os.Stderr, "       gbview -in <file.gb> -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		log, err := zap.NewDevelopment()
		if err == nil {
			gbio.SetLogger(log)
			defer log.Sync()
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*inFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, *escape, *truncate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, escape, truncate bool) error {
	records, err := gbio.Load(inFile)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n", inFile)
	fmt.Printf("Records: %d\n\n", len(records))
	for _, rec := range records {
		if err := printSummary(rec); err != nil {
			return err
		}
	}

	if outFile != "" {
		var opts []gbio.DumpOption
		if escape {
			opts = append(opts, gbio.EscapeLocus())
		}
		if truncate {
			opts = append(opts, gbio.TruncateLocus())
		}
		if err := gbio.Dump(records, outFile, opts...); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d records to %s\n", len(records), outFile)
	}
	return nil
}

func printSummary(rec *record.Record) error {
	seqBytes, err := rec.Sequence()
	if err != nil {
		return err
	}
	feats, err := rec.Features()
	if err != nil {
		return err
	}

	topology := "linear"
	if rec.Circular() {
		topology = "circular"
	}
	fmt.Printf("  %-20s %8d bp  %-8s %4d features\n",
		rec.Name, seqBytes.Len(), topology, feats.Len())
	return nil
}
