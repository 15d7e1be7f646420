package app

import (
	"strings"
	"testing"

	"sparkcalc/sparkos/kernel"
)

func TestPanicLines(t *testing.T) {
	lines := panicLines(kernel.PanicInfo{TaskID: 3, Value: "boom", Stack: []byte("goroutine 1\n\tmain.go:1\n")})
	want := []string{"SparkCalc panic:", "task: 3", "panic: boom", "stack:", "goroutine 1", "  main.go:1"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines=%q", lines)
	}
	if got := panicLines(kernel.PanicInfo{})[3]; got != "stack: unavailable" {
		t.Fatalf("no-stack line=%q", got)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in         string
		n          int
		head, tail string
	}{
		{"abcdef", 4, "abcd", "ef"},
		{"abc", 4, "abc", ""},
		{"çãé", 2, "çã", "é"},
		{"x", 0, "", "x"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.in, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d)=(%q, %q)", tt.in, tt.n, head, tail)
		}
	}
}
