package subtitle

import (
	"io"
	"strings"
	"testing"
)

func TestLineReader(t *testing.T) {
	lr := newLineReader(strings.NewReader("one\r\ntwo\nthree"))

	for i, want := range []string{"one", "two", "three"} {
		got, err := lr.next()
		if err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		if got != want {
			t.Errorf("line %d = %q, want %q", i+1, got, want)
		}
		if lr.line != i+1 {
			t.Errorf("counter = %d, want %d", lr.line, i+1)
		}
	}

	if _, err := lr.next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	// sticky after the end
	if _, err := lr.next(); err != io.EOF {
		t.Fatalf("expected io.EOF again, got %v", err)
	}
}

func TestLineReaderStripsBOM(t *testing.T) {
	lr := newLineReader(strings.NewReader("\uFEFFWEBVTT\n\uFEFFnot first\n"))

	got, err := lr.next()
	if err != nil {
		t.Fatal(err)
	}
	if got != "WEBVTT" {
		t.Errorf("first line = %q, want %q", got, "WEBVTT")
	}

	// only the leading BOM is stripped
	got, err = lr.next()
	if err != nil {
		t.Fatal(err)
	}
	if got != "\uFEFFnot first" {
		t.Errorf("second line = %q", got)
	}
}

func TestLineReaderEmptyStream(t *testing.T) {
	lr := newLineReader(strings.NewReader(""))
	if _, err := lr.next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if lr.line != 0 {
		t.Errorf("counter = %d, want 0", lr.line)
	}
}
