package sim

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"
)

var codes = []byte("BDHKMNRSVWY")

// Make returns a lower-case DNA sequence of given length with ~frac of its
// positions holding an upper-case ambiguity code. If seed==0 we use a
// time-based seed; otherwise results are reproducible.
func Make(length int, frac float64, seed int64) []byte {
	if length <= 0 {
		return []byte{}
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	codeCount := int(float64(length)*frac + 0.5) // nearest integer
	if codeCount > length {
		codeCount = length
	}

	seq := make([]byte, length)

	// Fill exact composition.
	for i := 0; i < codeCount; i++ {
		seq[i] = codes[r.Intn(len(codes))]
	}
	for i := codeCount; i < length; i++ {
		seq[i] = "acgt"[r.Intn(4)]
	}

	// Shuffle to disperse the codes.
	for i := length - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
	return seq
}

// WriteFasta writes seq as one FASTA record with lines wrapped at width
// columns (60 if width <= 0).
func WriteFasta(w io.Writer, id string, seq []byte, width int) error {
	if width <= 0 {
		width = 60
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, ">%s\n", id); err != nil {
		return err
	}
	for len(seq) > 0 {
		n := width
		if n > len(seq) {
			n = len(seq)
		}
		if _, err := bw.Write(seq[:n]); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return bw.Flush()
}
