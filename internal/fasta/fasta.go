// internal/fasta/fasta.go
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

const bufSize = 4 << 20 // 4 MiB

// Cleaned is a loaded stream with header lines and newlines stripped out.
// Case is preserved; matching downstream is case-sensitive.
type Cleaned struct {
	Seq    []byte
	RawLen int // bytes in the stream before stripping
}

// Open returns a reader for path, with "-" meaning stdin. Gzip input is
// detected by magic bytes or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(f, sig[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &gzipFile{zr: zr, f: f}, nil
	}
	return f, nil
}

type gzipFile struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipFile) Close() error {
	zerr := g.zr.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return zerr
}

// Load reads the whole stream, drops every line that starts with '>' and
// every newline, and returns the cleaned sequence plus the raw byte count.
// Only '\n' ends a line; any other byte, '\r' included, survives into Seq.
// A stream with zero bytes is an error.
func Load(r io.Reader) (Cleaned, error) {
	br := bufio.NewReaderSize(r, bufSize)
	var c Cleaned
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Cleaned{}, fmt.Errorf("read input: %w", err)
		}
		c.RawLen += len(line)
		if len(line) > 0 && line[len(line)-1] == '\n' {
			line = line[:len(line)-1]
		}
		if len(line) > 0 && line[0] != '>' {
			c.Seq = append(c.Seq, line...)
		}
		if err == io.EOF {
			break
		}
	}
	if c.RawLen == 0 {
		return Cleaned{}, errors.New("empty input")
	}
	return c, nil
}
