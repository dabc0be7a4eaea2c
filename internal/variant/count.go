// internal/variant/count.go
package variant

import (
	"errors"
	"runtime"
	"sync"
)

// Count returns the number of start positions in seq where any branch of the
// variant matches. Every valid start position is tested, so occurrences that
// overlap an earlier match are still counted.
func (v *Variant) Count(seq []byte) int {
	if len(v.strands) == 0 || len(seq) < v.minLen {
		return 0
	}
	count := 0
	for pos := 0; pos <= len(seq)-v.minLen; pos++ {
		for _, mask := range v.strands {
			if pos+len(mask) <= len(seq) && matchAt(mask, seq, pos) {
				count++
				break
			}
		}
	}
	return count
}

// CountAll counts every variant against seq using a pool of worker
// goroutines. Workers read seq but never write it, so they share the one
// slice. Counts come back in variant order regardless of which worker
// finished first. threads <= 0 means one worker per CPU.
func CountAll(seq []byte, variants []*Variant, threads int) ([]int, error) {
	for _, v := range variants {
		if v == nil || len(v.strands) == 0 {
			return nil, errors.New("uncompiled variant")
		}
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(variants) {
		threads = len(variants)
	}

	counts := make([]int, len(variants))
	jobs := make(chan int, len(variants))
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				counts[i] = variants[i].Count(seq)
			}
		}()
	}
	for i := range variants {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return counts, nil
}
