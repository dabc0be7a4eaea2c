// internal/variant/pattern.go
package variant

import (
	"errors"
	"fmt"
	"strings"
)

// 4-bit mask per base. Patterns are lowercase, and matching is
// case-sensitive, so the table carries no uppercase entries.
var codeMap = map[byte]uint8{
	'a': 1 << 0,
	'c': 1 << 1,
	'g': 1 << 2,
	't': 1 << 3,
	'r': (1 << 0) | (1 << 2),
	'y': (1 << 1) | (1 << 3),
	's': (1 << 1) | (1 << 2),
	'w': (1 << 0) | (1 << 3),
	'k': (1 << 2) | (1 << 3),
	'm': (1 << 0) | (1 << 1),
	'b': (1 << 1) | (1 << 2) | (1 << 3),
	'd': (1 << 0) | (1 << 2) | (1 << 3),
	'h': (1 << 0) | (1 << 1) | (1 << 3),
	'v': (1 << 0) | (1 << 1) | (1 << 2),
	'n': (1 << 0) | (1 << 1) | (1 << 2) | (1 << 3),
}

// seqMask maps a sequence byte to its base bits.
// NOTE: only lowercase a/c/g/t are set. Uppercase text, ambiguity codes and
// unknown bytes get mask 0 and fail every pattern position.
var seqMask [256]uint8

func init() {
	for _, b := range []byte("acgt") {
		seqMask[b] = codeMap[b]
	}
}

// compileStrand converts one alternation branch to per-position bit-masks.
// A bare letter contributes its IUPAC class; a "[...]" group ORs the classes
// of its members.
func compileStrand(s string) ([]uint8, error) {
	if s == "" {
		return nil, errors.New("empty strand")
	}
	masks := make([]uint8, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '[' {
			j := strings.IndexByte(s[i+1:], ']')
			if j < 0 {
				return nil, errors.New("unterminated class")
			}
			if j == 0 {
				return nil, errors.New("empty class")
			}
			var m uint8
			for k := i + 1; k < i+1+j; k++ {
				bm, ok := codeMap[s[k]]
				if !ok {
					return nil, fmt.Errorf("invalid base %q", s[k])
				}
				m |= bm
			}
			masks = append(masks, m)
			i += j + 2
			continue
		}
		m, ok := codeMap[s[i]]
		if !ok {
			return nil, fmt.Errorf("invalid base %q", s[i])
		}
		masks = append(masks, m)
		i++
	}
	return masks, nil
}

// matchAt reports whether the strand mask matches seq starting at pos.
// The caller guarantees pos+len(mask) <= len(seq).
func matchAt(mask []uint8, seq []byte, pos int) bool {
	n := len(mask)
	// fast reject on the last position
	if seqMask[seq[pos+n-1]]&mask[n-1] == 0 {
		return false
	}
	for i := 0; i < n-1; i++ {
		if seqMask[seq[pos+i]]&mask[i] == 0 {
			return false
		}
	}
	return true
}
