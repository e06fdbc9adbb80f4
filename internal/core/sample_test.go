package core

import (
	"math"
	"testing"
)

type scriptedRandom struct {
	vals []float64
	i    int
}

func (s *scriptedRandom) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestPickDistribution(t *testing.T) {
	tiers := []Weighted[string]{
		{Value: "slow", Weight: 1},
		{Value: "medium", Weight: 2},
		{Value: "fast", Weight: 7},
	}
	rng := NewRNG(7)
	const draws = 200000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[Pick(rng, tiers)]++
	}
	for _, tier := range tiers {
		got := float64(counts[tier.Value]) / draws
		want := tier.Weight / 10
		if math.Abs(got-want) > 0.02 {
			t.Errorf("tier %q frequency = %.4f, want %.2f±0.02", tier.Value, got, want)
		}
	}
}

func TestPickEvenSplit(t *testing.T) {
	tiers := []Weighted[string]{{Value: "a", Weight: 1}, {Value: "b", Weight: 1}}
	rng := NewRNG(42)
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[Pick(rng, tiers)]++
	}
	for _, v := range []string{"a", "b"} {
		share := float64(counts[v]) / 10000
		if share < 0.45 || share > 0.55 {
			t.Fatalf("share of %q = %.3f, want within [0.45, 0.55]", v, share)
		}
	}
}

func TestPickFallsBackToLast(t *testing.T) {
	tiers := []Weighted[string]{{Value: "a", Weight: 0.1}, {Value: "b", Weight: 0.2}, {Value: "c", Weight: 0.3}}
	// A source that overshoots its contract pushes the draw past the total.
	src := &scriptedRandom{vals: []float64{1.5}}
	if got := Pick(src, tiers); got != "c" {
		t.Fatalf("Pick = %q, want fallback to last tier %q", got, "c")
	}
}

func TestPickAlwaysReturnsDeclaredValue(t *testing.T) {
	tiers := make([]Weighted[int], 10)
	for i := range tiers {
		tiers[i] = Weighted[int]{Value: i + 1, Weight: 0.1}
	}
	edges := []float64{0, math.Nextafter(1, 0), 0.3, 0.7, 0.9999999999, 0.5}
	src := &scriptedRandom{vals: edges}
	for i := 0; i < len(edges)*3; i++ {
		got := Pick(src, tiers)
		if got < 1 || got > 10 {
			t.Fatalf("Pick returned %d, outside the declared values", got)
		}
	}
}

func TestPickEmpty(t *testing.T) {
	if got := Pick[string](NewRNG(1), nil); got != "" {
		t.Fatalf("Pick(nil) = %q, want zero value", got)
	}
}

func TestRandomRangeBounds(t *testing.T) {
	src := &scriptedRandom{vals: []float64{0, math.Nextafter(1, 0)}}
	if got := RandomRange(src, -3, 5); got != -3 {
		t.Fatalf("RandomRange low = %v, want -3", got)
	}
	if got := RandomRange(src, -3, 5); got >= 5 || got < 4.99 {
		t.Fatalf("RandomRange high = %v, want just below 5", got)
	}

	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := RandomRange32(rng, 0.5, 1)
		if v < 0.5 || v > 1 {
			t.Fatalf("RandomRange32 = %v, want within [0.5, 1]", v)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("RNGs with equal seeds diverged")
		}
	}
}
