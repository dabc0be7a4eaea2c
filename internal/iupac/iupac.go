// internal/iupac/iupac.go
package iupac

import "bytes"

// Rule maps one ambiguity code to its replacement text. The replacement is
// spliced in as literal bytes and never re-interpreted.
type Rule struct {
	Code byte
	Alt  string
}

// Rules is the canonical substitution table, applied in this order. Each
// pass rewrites the previous pass's output, so the order is part of the
// contract.
var Rules = []Rule{
	{'B', "(c|g|t)"},
	{'D', "(a|g|t)"},
	{'H', "(a|c|t)"},
	{'K', "(g|t)"},
	{'M', "(a|c)"},
	{'N', "(a|c|g|t)"},
	{'R', "(a|g)"},
	{'S', "(c|g)"},
	{'V', "(a|c|g)"},
	{'W', "(a|t)"},
	{'Y', "(c|t)"},
}

// Expand applies every rule in order, feeding each pass's output to the
// next. The input slice is never modified; a pass with nothing to replace
// hands its input through untouched.
func Expand(seq []byte, rules []Rule) []byte {
	for _, r := range rules {
		seq = expandOne(seq, r)
	}
	return seq
}

func expandOne(seq []byte, r Rule) []byte {
	hits := bytes.Count(seq, []byte{r.Code})
	if hits == 0 {
		return seq
	}
	out := make([]byte, 0, len(seq)+hits*(len(r.Alt)-1))
	for {
		j := bytes.IndexByte(seq, r.Code)
		if j < 0 {
			return append(out, seq...)
		}
		out = append(out, seq[:j]...)
		out = append(out, r.Alt...)
		seq = seq[j+1:]
	}
}
