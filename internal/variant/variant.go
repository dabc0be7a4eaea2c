// internal/variant/variant.go
package variant

import (
	"errors"
	"fmt"
	"strings"
)

// Variant is one compiled motif pattern: alternation branches separated by
// '|', each branch a run of bases and "[...]" classes.
type Variant struct {
	Pattern string // source text, printed verbatim in the report

	strands [][]uint8 // per-position masks, one slice per branch
	minLen  int       // shortest branch, lower bound for a match window
}

// Compile parses a motif pattern into a matcher.
func Compile(pattern string) (*Variant, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}
	v := &Variant{Pattern: pattern}
	for _, s := range strings.Split(pattern, "|") {
		masks, err := compileStrand(s)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if v.minLen == 0 || len(masks) < v.minLen {
			v.minLen = len(masks)
		}
		v.strands = append(v.strands, masks)
	}
	return v, nil
}

// MustCompile is Compile for patterns known good at build time.
func MustCompile(pattern string) *Variant {
	v, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return v
}

// MustCompileAll compiles a pattern list in order.
func MustCompileAll(patterns []string) []*Variant {
	vs := make([]*Variant, len(patterns))
	for i, p := range patterns {
		vs[i] = MustCompile(p)
	}
	return vs
}

// Defaults is the fixed motif set, in report order. Each pattern pairs a
// motif with its reverse complement.
var Defaults = MustCompileAll([]string{
	"agggtaaa|tttaccct",
	"[cgt]gggtaaa|tttaccc[acg]",
	"a[act]ggtaaa|tttacc[agt]t",
	"ag[act]gtaaa|tttac[agt]ct",
	"agg[act]taaa|ttta[agt]cct",
	"aggg[acg]aaa|ttt[cgt]ccct",
	"agggt[cgt]aa|tt[acg]accct",
	"agggta[cgt]a|t[acg]taccct",
	"agggtaa[cgt]|[acg]ttaccct",
})
