package core

import "testing"

func TestIntInInclusiveBounds(t *testing.T) {
	r := NewRNG(1)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := r.IntIn(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("IntIn(3, 7) = %d", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 7; v++ {
		if !seen[v] {
			t.Fatalf("IntIn(3, 7) never produced %d over 1000 draws", v)
		}
	}
	if v := r.IntIn(5, 5); v != 5 {
		t.Fatalf("IntIn(5, 5) = %d", v)
	}
}

func TestFloatInRange(t *testing.T) {
	r := NewRNG(2)
	for i := 0; i < 1000; i++ {
		v := r.FloatIn(240, 540)
		if v < 240 || v >= 540 {
			t.Fatalf("FloatIn(240, 540) = %v", v)
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 20; i++ {
		if av, bv := a.FloatIn(0, 1), b.FloatIn(0, 1); av != bv {
			t.Fatalf("draw %d: %v != %v for identical seeds", i, av, bv)
		}
	}
}
