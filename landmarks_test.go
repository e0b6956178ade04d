package mandel_test

import (
	"testing"

	mandel "mandelview"
)

func TestLandmarkCatalogue(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range mandel.Landmarks {
		if l.Name == "" {
			t.Error("landmark with empty name")
		}
		if seen[l.Name] {
			t.Errorf("duplicate landmark name %q", l.Name)
		}
		seen[l.Name] = true

		if l.RealDomain <= 0 {
			t.Errorf("%s: real domain %v must be positive", l.Name, l.RealDomain)
		}
		if l.Iterations < mandel.MinIter || l.Iterations > mandel.MaxIter {
			t.Errorf("%s: iterations %d out of range", l.Name, l.Iterations)
		}
	}
}

func TestLandmarkByName(t *testing.T) {
	l, ok := mandel.LandmarkByName("seahorse-valley")
	if !ok {
		t.Fatal("seahorse-valley not found")
	}
	if l != mandel.SeahorseValley {
		t.Errorf("got %+v, want %+v", l, mandel.SeahorseValley)
	}

	if _, ok := mandel.LandmarkByName("nowhere"); ok {
		t.Error("unknown landmark reported found")
	}
}

func TestLandmarkView(t *testing.T) {
	p := mandel.TripleSpiral.View(640, 480)
	want := mandel.Params{
		Center:     mandel.TripleSpiral.Center,
		Width:      640,
		Height:     480,
		RealDomain: mandel.TripleSpiral.RealDomain,
		Iterations: mandel.TripleSpiral.Iterations,
	}
	if p != want {
		t.Errorf("View = %+v, want %+v", p, want)
	}
}
