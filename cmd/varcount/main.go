package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"varcount/internal/fasta"
	"varcount/internal/iupac"
	"varcount/internal/report"
	"varcount/internal/sim"
	"varcount/internal/variant"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// ---- CLI flags ----------------------------------------------------------
	fastaPath := flag.String("fasta", "-", "input FASTA file (path or '-' for stdin; gzip ok)")
	outPath := flag.String("out", "-", "report destination (path or '-' for stdout)")
	jsonPath := flag.String("json", "", "optional: write run summary JSON here")
	threads := flag.Int("threads", runtime.NumCPU(), "number of worker goroutines")
	verbose := flag.Bool("v", false, "verbose progress to stderr")
	showVer := flag.Bool("version", false, "print version and exit")
	listAll := flag.Bool("list", false, "list motif patterns and substitution rules and exit")
	simLen := flag.Int("sim-len", 0, "generate a synthetic sequence of this length instead of reading input")
	simFrac := flag.Float64("sim-frac", 0.02, "ambiguity-code fraction for -sim-len")
	simSeed := flag.Int64("sim-seed", 0, "seed for -sim-len (0 = time-based)")

	flag.Usage = func() {
		b := &strings.Builder{}
		fmt.Fprintln(b, "varcount — count motif variants and expand ambiguity codes in DNA")
		fmt.Fprintln(b)
		fmt.Fprintln(b, "Usage:")
		fmt.Fprintln(b, "  varcount [options] < input.fa")
		fmt.Fprintln(b)
		fmt.Fprintln(b, "Options:")
		flag.CommandLine.SetOutput(b)
		flag.PrintDefaults()
		flag.CommandLine.SetOutput(os.Stderr)
		fmt.Fprintln(b)
		fmt.Fprintln(b, "Examples:")
		fmt.Fprintln(b, "  # Pipe FASTA in, report on stdout")
		fmt.Fprintln(b, "  varcount < input.fa")
		fmt.Fprintln(b, "  # Read gzip directly, save report and JSON summary")
		fmt.Fprintln(b, "  varcount -fasta input.fa.gz -out report.txt -json run.json")
		fmt.Fprintln(b, "  # Synthetic benchmark input, reproducible")
		fmt.Fprintln(b, "  varcount -sim-len 1000000 -sim-seed 42")
		fmt.Fprint(os.Stderr, b.String()) // avoid extra blank line
	}

	flag.Parse()

	if *showVer {
		fmt.Printf("varcount %s (commit %s, %s)\n", version, commit, date)
		return
	}
	if *listAll {
		for _, v := range variant.Defaults {
			fmt.Println(v.Pattern)
		}
		fmt.Println()
		for _, r := range iupac.Rules {
			fmt.Printf("%c %s\n", r.Code, r.Alt)
		}
		return
	}

	// ---- load and clean input ----------------------------------------------
	var src io.ReadCloser
	if *simLen > 0 {
		seq := sim.Make(*simLen, *simFrac, *simSeed)
		var buf bytes.Buffer
		if err := sim.WriteFasta(&buf, "sim", seq, 60); err != nil {
			log.Fatalf("simulate: %v", err)
		}
		src = io.NopCloser(&buf)
	} else {
		var err error
		src, err = fasta.Open(*fastaPath)
		if err != nil {
			log.Fatalf("open %s: %v", *fastaPath, err)
		}
	}
	cleaned, err := fasta.Load(src)
	_ = src.Close()
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "raw=%d cleaned=%d\n", cleaned.RawLen, len(cleaned.Seq))
	}

	// ---- rewrite concurrently with counting --------------------------------
	// Both sides only read cleaned.Seq, so they share the one slice.
	expCh := make(chan []byte, 1)
	go func() { expCh <- iupac.Expand(cleaned.Seq, iupac.Rules) }()

	counts, err := variant.CountAll(cleaned.Seq, variant.Defaults, *threads)
	if err != nil {
		log.Fatalf("count: %v", err)
	}
	expanded := <-expCh
	if *verbose {
		fmt.Fprintf(os.Stderr, "expanded=%d\n", len(expanded))
	}

	results := make([]report.Result, len(variant.Defaults))
	for i, v := range variant.Defaults {
		results[i] = report.Result{Pattern: v.Pattern, Count: counts[i]}
	}
	lengths := report.Lengths{
		Input:    cleaned.RawLen,
		Cleaned:  len(cleaned.Seq),
		Expanded: len(expanded),
	}

	// ---- report -------------------------------------------------------------
	out := io.Writer(os.Stdout)
	var outFile *os.File
	if *outPath != "-" && *outPath != "" {
		outFile, err = os.Create(*outPath)
		if err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		out = outFile
	}
	if err := report.Write(out, results, lengths); err != nil {
		log.Fatalf("write report: %v", err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			log.Fatalf("close %s: %v", *outPath, err)
		}
	}

	if *jsonPath != "" {
		sum := report.NewSummary(results, lengths, cleaned.Seq, expanded)
		f, err := os.Create(*jsonPath)
		if err != nil {
			log.Fatalf("write json: %v", err)
		}
		if err := json.NewEncoder(f).Encode(sum); err != nil {
			log.Fatalf("encode json: %v", err)
		}
		_ = f.Close()
	}
}
