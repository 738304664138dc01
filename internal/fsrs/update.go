package fsrs

import "math"

// MemoryState is the per-topic memory model. A non-positive stability
// marks a topic that has never been reviewed.
type MemoryState struct {
	Difficulty float64
	Stability  float64
}

// Update is the result of applying one review outcome to a memory state.
type Update struct {
	State MemoryState // new state, sanitized and rounded
	Prev  MemoryState

	// Retrievability at review time; nil on a first review.
	Retrievability *float64

	// Interval is the unfuzzed interval (days) for the new stability at
	// the requested retention, before per-grade scheduling floors.
	Interval int

	FirstReview bool
}

// NextState computes the new memory state for a review outcome.
//
// First review (stability <= 0): stability and difficulty come from the
// initial-value formulas. Subsequent reviews split into three regimes:
// same-day (elapsedDays == 0, any grade), lapse (Again with elapsed
// time, capped so a lapse never increases stability), and recall
// (Hard/Good/Easy with elapsed time).
//
// The result is always sanitized: non-finite difficulty is recomputed
// from the first-review formula, non-finite or out-of-range stability
// is clamped, and both values are rounded to 2 decimals. Negative
// elapsedDays is treated as 0. Panics only on an invalid grade.
func NextState(p Params, state MemoryState, grade Grade, elapsedDays int) Update {
	mustValidGrade(grade)
	p = p.Resolve()
	w := p.Weights

	if elapsedDays < 0 {
		elapsedDays = 0
	}

	upd := Update{Prev: state}

	var d, s float64
	if state.Stability <= 0 {
		upd.FirstReview = true
		s = InitialStability(w, grade)
		d = InitialDifficulty(w, grade)
	} else {
		c := curveParams(p.Version, p.Weights)
		r := retrievability(c, state.Stability, elapsedDays)
		upd.Retrievability = &r

		d = nextDifficulty(w, state.Difficulty, grade)

		switch {
		case elapsedDays == 0:
			// Same-day regime applies to Again as well.
			s = shortTermStability(p.Version, w, state.Stability, grade)
		case grade == Again:
			s = math.Min(forgetStability(w, d, state.Stability, r), state.Stability)
		default:
			s = recallStability(w, d, state.Stability, r, grade)
		}
	}

	d, s = sanitize(w, grade, d, s)
	upd.State = MemoryState{Difficulty: d, Stability: s}

	c := curveParams(p.Version, p.Weights)
	upd.Interval = nextInterval(c, s, p.RequestedRetention, p.MaxIntervalDays)

	return upd
}

// sanitize is the last line of defense against numeric blow-up: no
// NaN or infinity may ever reach stored state.
func sanitize(w []float64, grade Grade, d, s float64) (float64, float64) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		d = InitialDifficulty(w, grade)
	}
	d = round2(clampDifficulty(d))
	s = round2(clampStability(s))
	return d, s
}
