package fsrs

import (
	"math"
	"math/rand"
)

// minFuzzInterval is the absolute floor for a fuzzed interval.
const minFuzzInterval = 2

// fuzzFactor returns the tolerance band for an interval:
// ±15% under 8 days, ±10% under 30, ±5% otherwise.
func fuzzFactor(interval int) float64 {
	switch {
	case interval < 8:
		return 0.15
	case interval < 30:
		return 0.10
	default:
		return 0.05
	}
}

// fuzzRange returns the inclusive [lo, hi] bounds for a fuzz draw. The
// lower bound always sits below the unfuzzed interval and the upper
// bound above it, so the draw can move the interval in either direction.
func fuzzRange(interval int) (lo, hi int) {
	f := fuzzFactor(interval)
	lo = int(math.Round(float64(interval) * (1 - f)))
	hi = int(math.Round(float64(interval) * (1 + f)))

	if lo >= interval {
		lo = interval - 1
	}
	if hi <= interval {
		hi = interval + 1
	}
	if lo < minFuzzInterval {
		lo = minFuzzInterval
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// fuzzInterval draws a jittered interval uniformly within the tolerance
// band. Intervals under 3 days are never fuzzed. A nil source disables
// fuzz entirely, which keeps golden-output tests reproducible.
func fuzzInterval(interval int, rng *rand.Rand) int {
	if rng == nil || interval < 3 {
		return interval
	}
	lo, hi := fuzzRange(interval)
	return lo + rng.Intn(hi-lo+1)
}
