package report

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Pattern: "agggtaaa|tttaccct", Count: 3},
		{Pattern: "[cgt]gggtaaa|tttaccc[acg]", Count: 0},
	}
	err := Write(&buf, results, Lengths{Input: 26, Cleaned: 16, Expanded: 70})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "agggtaaa|tttaccct 3\n" +
		"[cgt]gggtaaa|tttaccc[acg] 0\n" +
		"\n26\n16\n70\n"
	if buf.String() != want {
		t.Fatalf("report = %q, want %q", buf.String(), want)
	}
}

func TestWriteNoResults(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, Lengths{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "\n0\n0\n0\n" {
		t.Fatalf("report = %q", buf.String())
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint([]byte("acgt"))
	if len(fp) != 64 {
		t.Fatalf("fingerprint length %d, want 64", len(fp))
	}
	if fp != Fingerprint([]byte("acgt")) {
		t.Fatal("fingerprint not deterministic")
	}
	if fp == Fingerprint([]byte("acga")) {
		t.Fatal("distinct inputs share a fingerprint")
	}
}

func TestSummaryJSON(t *testing.T) {
	results := []Result{{Pattern: "agggtaaa|tttaccct", Count: 1}}
	sum := NewSummary(results, Lengths{Input: 10, Cleaned: 8, Expanded: 8},
		[]byte("agggtaaa"), []byte("agggtaaa"))

	data, err := json.Marshal(sum)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"motifs", "input_length", "cleaned_length", "expanded_length",
		"cleaned_blake2b", "expanded_blake2b",
	} {
		if _, ok := m[key]; !ok {
			t.Fatalf("summary JSON missing %q: %s", key, data)
		}
	}
	if m["cleaned_blake2b"] != m["expanded_blake2b"] {
		t.Fatal("identical sequences should share a digest")
	}
}
