package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Say something") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(r, "p", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "partial" {
		t.Fatalf("got %q", got)
	}
}

func TestGetSimpleText_EOFEmpty(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	if _, err := GetSimpleText(r, "p", &out); err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestGetSecret_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	got, err := GetSecret("Enter signing secret", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "s3cret" {
		t.Fatalf("got %q", string(got))
	}
	if !strings.Contains(out.String(), "Enter signing secret") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetSecret_PropagatesError(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	boom := errors.New("no tty")
	readPassword = func(fd int) ([]byte, error) {
		return nil, boom
	}

	var out bytes.Buffer
	if _, err := GetSecret("p", &out); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\n"))

	got, err := GetMultiline(r, "Describe", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "line one\nline two" {
		t.Fatalf("got %q", got)
	}
}
