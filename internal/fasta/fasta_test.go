package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(">h1\nACGTacgtNNNN\n>h2\nBDHK\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.RawLen != 26 {
		t.Fatalf("RawLen = %d, want 26", c.RawLen)
	}
	if string(c.Seq) != "ACGTacgtNNNNBDHK" {
		t.Fatalf("Seq = %q", c.Seq)
	}
}

func TestLoadNoTrailingNewline(t *testing.T) {
	c, err := Load(strings.NewReader(">h\nacgt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.RawLen != 7 || string(c.Seq) != "acgt" {
		t.Fatalf("RawLen = %d, Seq = %q", c.RawLen, c.Seq)
	}
}

func TestLoadKeepsCaseAndCR(t *testing.T) {
	// '\r' is sequence data here, not a line ending
	c, err := Load(strings.NewReader(">h\r\naCgT\r\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(c.Seq) != "aCgT\r" {
		t.Fatalf("Seq = %q", c.Seq)
	}
	if c.RawLen != 10 {
		t.Fatalf("RawLen = %d, want 10", c.RawLen)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	c, err := Load(strings.NewReader(">only a header\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Seq) != 0 || c.RawLen != 15 {
		t.Fatalf("Seq = %q, RawLen = %d", c.Seq, c.RawLen)
	}
}

func TestLoadEmpty(t *testing.T) {
	if _, err := Load(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(">h\nacgt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	c, err := Load(r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(c.Seq) != "acgt" || c.RawLen != 8 {
		t.Fatalf("Seq = %q, RawLen = %d", c.Seq, c.RawLen)
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(">h\nacgt\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	c, err := Load(r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// RawLen counts decompressed bytes
	if string(c.Seq) != "acgt" || c.RawLen != 8 {
		t.Fatalf("Seq = %q, RawLen = %d", c.Seq, c.RawLen)
	}
}

func TestOpenStdin(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	saved := os.Stdin
	os.Stdin = pr
	defer func() { os.Stdin = saved }()

	go func() {
		pw.WriteString(">h\nacgt\n")
		pw.Close()
	}()

	r, err := Open("-")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	c, err := Load(r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(c.Seq) != "acgt" {
		t.Fatalf("Seq = %q", c.Seq)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
