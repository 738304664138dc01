package fsrs

import "math"

// Retrievability calculates the probability of recall after elapsedDays.
//
//	R(t, S) = (1 + FACTOR * t / S)^DECAY
//
// Returns 0 when stability is not positive.
func Retrievability(p Params, stability float64, elapsedDays int) float64 {
	p = p.Resolve()
	c := curveParams(p.Version, p.Weights)
	return retrievability(c, stability, elapsedDays)
}

func retrievability(c curve, stability float64, elapsedDays int) float64 {
	if stability <= 0 {
		return 0
	}
	return math.Pow(1+c.factor*float64(elapsedDays)/stability, c.decay)
}

// NextInterval converts stability to an interval in days at the
// configured requested retention.
func NextInterval(p Params, stability float64) int {
	p = p.Resolve()
	c := curveParams(p.Version, p.Weights)
	return nextInterval(c, stability, p.RequestedRetention, p.MaxIntervalDays)
}

// NextIntervalAt is NextInterval at an explicit retention, clamped to
// [MinRetention, MaxRetention].
func NextIntervalAt(p Params, stability, retention float64) int {
	p = p.Resolve()
	c := curveParams(p.Version, p.Weights)
	return nextInterval(c, stability, clampFloat(retention, MinRetention, MaxRetention), p.MaxIntervalDays)
}

// nextInterval is the inverse of the forward model:
//
//	I(S, r) = round((S / FACTOR) * (r^(1/DECAY) - 1))
//
// clamped to [1, maxIntervalDays]. Returns 1 when stability <= 0.
func nextInterval(c curve, stability, retention float64, maxIntervalDays int) int {
	if stability <= 0 {
		return 1
	}
	ivl := stability / c.factor * (math.Pow(retention, 1.0/c.decay) - 1)
	n := int(math.Round(ivl))
	return clampInt(n, 1, maxIntervalDays)
}

// InitialStability returns the first-review stability S0(G) = w[G-1].
func InitialStability(w []float64, g Grade) float64 {
	mustValidGrade(g)
	return w[int(g)-1]
}

// InitialDifficulty returns the first-review difficulty
//
//	D0(G) = w[4] - e^(w[5] * (G - 1)) + 1
//
// clamped to [1, 10].
func InitialDifficulty(w []float64, g Grade) float64 {
	mustValidGrade(g)
	d := w[4] - math.Exp(w[5]*float64(g-1)) + 1
	return clampDifficulty(d)
}

// nextDifficulty updates difficulty after a review:
//
//	delta  = -w[6] * (G - 3)
//	damped = D + delta * (10 - D) / 9
//	D'     = w[7] * D0(Easy) + (1 - w[7]) * damped
//
// clamped to [1, 10]. Mean reversion toward D0(Easy) keeps difficulty
// from drifting over long review histories.
func nextDifficulty(w []float64, d float64, g Grade) float64 {
	delta := -w[6] * (float64(g) - 3)
	damped := d + delta*(10-d)/9
	next := w[7]*InitialDifficulty(w, Easy) + (1-w[7])*damped
	return clampDifficulty(next)
}

// shortTermStability handles same-day reviews (elapsedDays == 0), for
// every grade including Again:
//
//	boost = e^(w[17] * (G - 3 + w[18]))       (V6: boost *= S^(-w[19]))
//	S'    = S * boost
//
// For Good and Easy the boost never drops below 1: a positive same-day
// outcome must not shrink stability.
func shortTermStability(v Version, w []float64, s float64, g Grade) float64 {
	boost := math.Exp(w[17] * (float64(g) - 3 + w[18]))
	if v == V6 {
		boost *= math.Pow(s, -w[19])
	}
	if g == Good || g == Easy {
		boost = math.Max(1, boost)
	}
	return s * boost
}

// forgetStability computes post-lapse stability (Again with elapsed time):
//
//	S'f = w[11] * D^(-w[12]) * ((S+1)^w[13] - 1) * e^(w[14] * (1-R))
//
// The caller caps the result at the pre-lapse stability.
func forgetStability(w []float64, d, s, r float64) float64 {
	return w[11] *
		math.Pow(d, -w[12]) *
		(math.Pow(s+1, w[13]) - 1) *
		math.Exp(w[14]*(1-r))
}

// recallStability computes stability after Hard/Good/Easy with elapsed time:
//
//	growth = e^(w[8]) * (11 - D) * S^(-w[9]) * (e^(w[10] * (1-R)) - 1)
//	S'     = S * (1 + growth * hardPenalty * easyBonus)
//
// hardPenalty = w[15] if G == Hard, easyBonus = w[16] if G == Easy.
func recallStability(w []float64, d, s, r float64, g Grade) float64 {
	growth := math.Exp(w[8]) *
		(11 - d) *
		math.Pow(s, -w[9]) *
		(math.Exp(w[10]*(1-r)) - 1)
	if g == Hard {
		growth *= w[15]
	}
	if g == Easy {
		growth *= w[16]
	}
	return s * (1 + growth)
}

// clampDifficulty constrains difficulty to [1, 10]. NaN maps to the floor.
func clampDifficulty(d float64) float64 {
	if math.IsNaN(d) {
		return MinDifficulty
	}
	return math.Min(MaxDifficulty, math.Max(MinDifficulty, d))
}

// clampStability constrains stability to [MinStability, MaxStability].
// NaN maps to the floor.
func clampStability(s float64) float64 {
	if math.IsNaN(s) {
		return MinStability
	}
	return math.Min(MaxStability, math.Max(MinStability, s))
}

// round2 rounds to 2 decimal places so stored state reproduces exactly.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
