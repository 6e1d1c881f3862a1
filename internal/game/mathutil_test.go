package game

import (
	"math"
	"testing"
)

func TestRandRangesStayInBounds(t *testing.T) {
	r := NewRand(123)
	for i := 0; i < 10000; i++ {
		if v := r.Range(2, 5); v < 2 || v > 5 {
			t.Fatalf("Range(2,5) = %d", v)
		}
		if v := r.RangeF(20, 70); v < 20 || v > 70 {
			t.Fatalf("RangeF(20,70) = %f", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %f", v)
		}
	}
}

func TestRandIsDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
	if NewRand(0).NextU64() == 0 {
		t.Fatal("zero seed must not produce a stuck generator")
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{-1, 32, 31}, {32, 32, 0}, {5, 32, 5}, {-33, 32, 31},
	}
	for _, tt := range tests {
		if got := wrapIndex(tt.i, tt.n); got != tt.want {
			t.Fatalf("wrapIndex(%d,%d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestAngDiffTakesShortWay(t *testing.T) {
	if d := angDiff(math.Pi-0.1, -math.Pi+0.1); math.Abs(d-0.2) > 1e-9 {
		t.Fatalf("expected +0.2 across the seam, got %f", d)
	}
	if d := angDiff(0.1, -0.1); math.Abs(d+0.2) > 1e-9 {
		t.Fatalf("expected -0.2, got %f", d)
	}
}

func TestMustfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	mustf(false, "boom %d", 1)
}
