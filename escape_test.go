package mandel_test

import (
	"testing"

	mandel "mandelview"
)

func TestEscapeTimeOriginNeverEscapes(t *testing.T) {
	for _, maxIter := range []uint32{1, 10, 64, 1000} {
		if got := mandel.EscapeTime(0, maxIter); got != maxIter {
			t.Errorf("EscapeTime(0, %d) = %d, want %d", maxIter, got, maxIter)
		}
	}
}

func TestEscapeTimeImmediateEscape(t *testing.T) {
	// Points with |z0|^2 >= 4 escape before the first iteration.
	for _, z0 := range []complex128{2, -2, complex(0, 2), complex(3, 4)} {
		if got := mandel.EscapeTime(z0, 100); got != 0 {
			t.Errorf("EscapeTime(%v, 100) = %d, want 0", z0, got)
		}
	}
}

func TestEscapeTimeKnownOrbits(t *testing.T) {
	tests := []struct {
		z0      complex128
		maxIter uint32
		want    uint32
	}{
		// 1 -> 2, |2|^2 = 4 escapes after one iteration.
		{z0: 1, maxIter: 100, want: 1},
		// -1 cycles between -1 and 0 forever.
		{z0: -1, maxIter: 100, want: 100},
		// -2 sits exactly on the boundary: -2 -> 2 -> 2 -> ... with
		// |z|^2 = 4, so it escapes immediately.
		{z0: -2, maxIter: 100, want: 0},
	}
	for _, tt := range tests {
		if got := mandel.EscapeTime(tt.z0, tt.maxIter); got != tt.want {
			t.Errorf("EscapeTime(%v, %d) = %d, want %d", tt.z0, tt.maxIter, got, tt.want)
		}
	}
}

func TestEscapeTimeNonIncreasingOutward(t *testing.T) {
	// Escape time can only drop as z0 moves out along the real axis beyond
	// the set's boundary.
	points := []complex128{complex(0.26, 0), complex(0.5, 0), complex(1, 0), complex(2, 0)}
	prev := mandel.EscapeTime(points[0], 1000)
	for _, z0 := range points[1:] {
		n := mandel.EscapeTime(z0, 1000)
		if n > prev {
			t.Errorf("EscapeTime(%v) = %d, greater than %d for a point closer to the set", z0, n, prev)
		}
		prev = n
	}
}

func TestEscapeTimeCapped(t *testing.T) {
	if got := mandel.EscapeTime(complex(0.26, 0), 5); got > 5 {
		t.Errorf("EscapeTime exceeded cap: %d > 5", got)
	}
}
