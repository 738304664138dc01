package fsrs

import (
	"math/rand"
	"testing"
)

func TestFuzzFactor(t *testing.T) {
	tests := []struct {
		interval int
		want     float64
	}{
		{3, 0.15},
		{7, 0.15},
		{8, 0.10},
		{29, 0.10},
		{30, 0.05},
		{365, 0.05},
	}

	for _, tt := range tests {
		if got := fuzzFactor(tt.interval); got != tt.want {
			t.Errorf("fuzzFactor(%d) = %v, want %v", tt.interval, got, tt.want)
		}
	}
}

func TestFuzzRange(t *testing.T) {
	for _, interval := range []int{3, 4, 7, 8, 15, 29, 30, 100, 365, 3650} {
		lo, hi := fuzzRange(interval)

		if lo >= interval {
			t.Errorf("interval %d: lo %d must sit below the unfuzzed value", interval, lo)
		}
		if hi <= interval {
			t.Errorf("interval %d: hi %d must sit above the unfuzzed value", interval, hi)
		}
		if lo < minFuzzInterval {
			t.Errorf("interval %d: lo %d below floor %d", interval, lo, minFuzzInterval)
		}
	}
}

func TestFuzzInterval_SmallIntervalsUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, interval := range []int{0, 1, 2} {
		if got := fuzzInterval(interval, rng); got != interval {
			t.Errorf("fuzzInterval(%d) = %d, want unchanged", interval, got)
		}
	}
}

func TestFuzzInterval_NilRngDisables(t *testing.T) {
	for _, interval := range []int{3, 10, 100} {
		if got := fuzzInterval(interval, nil); got != interval {
			t.Errorf("fuzzInterval(%d, nil) = %d, want unchanged", interval, got)
		}
	}
}

func TestFuzzInterval_StaysInBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, interval := range []int{3, 5, 10, 25, 50, 400} {
		lo, hi := fuzzRange(interval)
		for i := 0; i < 200; i++ {
			got := fuzzInterval(interval, rng)
			if got < lo || got > hi {
				t.Fatalf("fuzzInterval(%d) = %d outside [%d, %d]", interval, got, lo, hi)
			}
		}
	}
}

func TestFuzzInterval_SeedReproducible(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		x := fuzzInterval(20, a)
		y := fuzzInterval(20, b)
		if x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}
