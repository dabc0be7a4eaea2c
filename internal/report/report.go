// internal/report/report.go
package report

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Result pairs one motif pattern with its count.
type Result struct {
	Pattern string `json:"pattern"`
	Count   int    `json:"count"`
}

// Lengths are the three reported sizes: raw input stream, cleaned sequence,
// expanded sequence.
type Lengths struct {
	Input    int `json:"input_length"`
	Cleaned  int `json:"cleaned_length"`
	Expanded int `json:"expanded_length"`
}

// Write emits the plain-text report: one "pattern count" line per result in
// order, a blank line, then the three lengths each on its own line.
func Write(w io.Writer, results []Result, l Lengths) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%s %d\n", r.Pattern, r.Count); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "\n%d\n%d\n%d\n", l.Input, l.Cleaned, l.Expanded); err != nil {
		return err
	}
	return bw.Flush()
}

// Fingerprint returns the hex BLAKE2b-256 digest of seq, a compact identity
// for sequences too large to keep in a summary.
func Fingerprint(seq []byte) string {
	sum := blake2b.Sum256(seq)
	return hex.EncodeToString(sum[:])
}

// Summary is the machine-readable run record written by -json.
type Summary struct {
	Motifs []Result `json:"motifs"`
	Lengths
	CleanedDigest  string `json:"cleaned_blake2b"`
	ExpandedDigest string `json:"expanded_blake2b"`
}

// NewSummary builds a Summary, fingerprinting both sequence stages.
func NewSummary(results []Result, l Lengths, cleaned, expanded []byte) Summary {
	return Summary{
		Motifs:         results,
		Lengths:        l,
		CleanedDigest:  Fingerprint(cleaned),
		ExpandedDigest: Fingerprint(expanded),
	}
}
