package calc

import (
	"errors"
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{-1.5, "-1.5"},
		{0.25, "0.25"},
		{123456789012345680000, "123456789012345680000"},
		{1e21, "1e+21"},
		{-2.5e30, "-2.5e+30"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestParseFloatPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"  -3.25\n", -3.25, true},
		{"12abc", 12, true},
		{"1.5.6", 1.5, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseFloatPrefix(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("parseFloatPrefix(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		a, b float64
		op   Operator
		want float64
	}{
		{2, 3, OpAdd, 5},
		{2, 3, OpSub, -1},
		{2, 3, OpMul, 6},
		{3, 2, OpDiv, 1.5},
		{7, 4, OpPercent, 3},
		{-7, 4, OpPercent, -3},
	}
	for _, tt := range tests {
		got, err := Apply(tt.a, tt.op, tt.b)
		if err != nil {
			t.Fatalf("Apply(%v %s %v): %v", tt.a, tt.op, tt.b, err)
		}
		if got != tt.want {
			t.Fatalf("Apply(%v %s %v) = %v, want %v", tt.a, tt.op, tt.b, got, tt.want)
		}
	}

	if _, err := Apply(1, OpNone, 2); !errors.Is(err, ErrMalformed) {
		t.Fatalf("Apply with no operator: err = %v, want ErrMalformed", err)
	}
}

func TestReduceRejectsMalformedWindows(t *testing.T) {
	windows := [][]Token{
		nil,
		{Op(OpAdd)},
		{Number(1), Number(2), Number(3)},
		{Number(1), Op(OpAdd)},
		{Number(1), Op(OpAdd), Number(2), Op(OpAdd)},
	}
	for _, w := range windows {
		if _, err := reduce(w); !errors.Is(err, ErrMalformed) {
			t.Fatalf("reduce(%v): err = %v, want ErrMalformed", w, err)
		}
	}
}

func TestParseOperator(t *testing.T) {
	for _, r := range "+-*/%" {
		op, ok := ParseOperator(r)
		if !ok || op.String() != string(r) {
			t.Fatalf("ParseOperator(%q) = (%v, %v)", r, op, ok)
		}
	}
	if _, ok := ParseOperator('='); ok {
		t.Fatal("'=' must not parse as a stored operator")
	}
}
