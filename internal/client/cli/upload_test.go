package cli

import (
	"bytes"
	"testing"
)

func TestSplitChunks(t *testing.T) {
	data := []byte("abcdefghij")

	chunks := splitChunks(data, 4)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if !bytes.Equal(chunks[0], []byte("abcd")) ||
		!bytes.Equal(chunks[1], []byte("efgh")) ||
		!bytes.Equal(chunks[2], []byte("ij")) {
		t.Fatalf("unexpected chunks: %q %q %q", chunks[0], chunks[1], chunks[2])
	}
}

func TestSplitChunks_ExactMultiple(t *testing.T) {
	chunks := splitChunks([]byte("abcdef"), 3)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if len(chunks[1]) != 3 {
		t.Fatalf("last chunk len = %d, want 3", len(chunks[1]))
	}
}

func TestSplitChunks_Degenerate(t *testing.T) {
	if got := splitChunks(nil, 4); got != nil {
		t.Fatalf("nil data should yield nil, got %v", got)
	}
	if got := splitChunks([]byte("abc"), 0); got != nil {
		t.Fatalf("non-positive size should yield nil, got %v", got)
	}
}

func TestSplitChunks_Reassembles(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	var rebuilt []byte
	for _, c := range splitChunks(data, 7) {
		rebuilt = append(rebuilt, c...)
	}
	if !bytes.Equal(rebuilt, data) {
		t.Fatalf("reassembled data differs")
	}
}
