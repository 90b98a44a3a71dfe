package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestClip16Identity(t *testing.T) {
	for x := int64(math.MinInt16); x <= math.MaxInt16; x++ {
		if got := Clip16(x); int64(got) != x {
			t.Fatalf("Clip16(%d) = %d, want %d", x, got, x)
		}
	}
}

func TestClip16Saturates(t *testing.T) {
	tests := []struct {
		in   int64
		want int16
	}{
		{in: -32769, want: -32768},
		{in: -1 << 40, want: -32768},
		{in: math.MinInt64, want: -32768},
		{in: 32768, want: 32767},
		{in: 1 << 40, want: 32767},
		{in: math.MaxInt64, want: 32767},
	}

	for _, tt := range tests {
		if got := Clip16(tt.in); got != tt.want {
			t.Fatalf("Clip16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSaturate16(t *testing.T) {
	if got := Saturate16(40000); got != 32767 {
		t.Fatalf("Saturate16(40000) = %d, want 32767", got)
	}
	if got := Saturate16(-40000); got != -32768 {
		t.Fatalf("Saturate16(-40000) = %d, want -32768", got)
	}
	if got := Saturate16(-12); got != -12 {
		t.Fatalf("Saturate16(-12) = %d, want -12", got)
	}
}

func TestTruncToInt(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{in: 1.9, want: 1},
		{in: -1.9, want: -1},
		{in: 32767.99, want: 32767},
		{in: -32768.99, want: -32768},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: math.MaxInt64},
		{in: math.Inf(-1), want: math.MinInt64},
	}

	for _, tt := range tests {
		if got := TruncToInt(tt.in); got != tt.want {
			t.Fatalf("TruncToInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
