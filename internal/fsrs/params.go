package fsrs

import (
	"fmt"
	"math"
)

// Grade is the learner's self-assessed recall outcome.
type Grade int

const (
	Again Grade = 1
	Hard  Grade = 2
	Good  Grade = 3
	Easy  Grade = 4
)

// Grades lists all grades in scheduling order.
var Grades = [4]Grade{Again, Hard, Good, Easy}

// IsValid reports whether g is one of the four defined grades.
func (g Grade) IsValid() bool {
	return g >= Again && g <= Easy
}

// mustValidGrade panics on a grade outside {1,2,3,4}. A bad grade is a
// programming-contract violation, not domain variance.
func mustValidGrade(g Grade) {
	if !g.IsValid() {
		panic(fmt.Sprintf("fsrs: invalid grade %d", int(g)))
	}
}

// Bounds for clamped engine values.
const (
	MinStability  = 0.1
	MaxStability  = 36500.0
	MinDifficulty = 1.0
	MaxDifficulty = 10.0

	MinRetention = 0.01
	MaxRetention = 0.999

	MaxLapseMinIntervalDays = 7
	MaxIntervalCeilingDays  = 36500
)

// Defaults applied by Resolve when a field is unset.
const (
	DefaultRetention       = 0.9
	DefaultMaxIntervalDays = 36500
)

// Params holds the engine configuration. The zero value resolves to the
// v5 defaults. Call Resolve to obtain a fully populated, legal copy;
// all engine entry points resolve their input themselves, so malformed
// configuration degrades to defaults and never produces an error.
type Params struct {
	Version              Version
	RequestedRetention   float64
	Weights              []float64 // nil or invalid -> version defaults
	LapseMinIntervalDays int
	MaxIntervalDays      int // 0 -> DefaultMaxIntervalDays
}

// DefaultParams returns the v5 configuration with reference weights.
func DefaultParams() Params {
	return Params{
		Version:            V5,
		RequestedRetention: DefaultRetention,
		Weights:            DefaultWeights(V5),
		MaxIntervalDays:    DefaultMaxIntervalDays,
	}
}

// Resolve normalizes arbitrary input into a complete legal configuration.
// Version defaults to V5 unless V6 is explicit. Retention is clamped to
// [0.01, 0.999] (0 means unset and takes 0.9). A custom weight vector is
// kept only if its length matches the version's expected count and every
// element is finite; otherwise the version defaults are substituted
// silently. The lapse minimum interval is clamped to [0, 7] and the max
// interval to [1, 36500] (0 means unset and takes 36500).
func (p Params) Resolve() Params {
	out := p

	if out.Version != V6 {
		out.Version = V5
	}

	if out.RequestedRetention == 0 {
		out.RequestedRetention = DefaultRetention
	}
	out.RequestedRetention = clampFloat(out.RequestedRetention, MinRetention, MaxRetention)

	if !validWeights(out.Version, out.Weights) {
		out.Weights = DefaultWeights(out.Version)
	}

	out.LapseMinIntervalDays = clampInt(out.LapseMinIntervalDays, 0, MaxLapseMinIntervalDays)

	if out.MaxIntervalDays == 0 {
		out.MaxIntervalDays = DefaultMaxIntervalDays
	}
	out.MaxIntervalDays = clampInt(out.MaxIntervalDays, 1, MaxIntervalCeilingDays)

	return out
}

func validWeights(v Version, w []float64) bool {
	if len(w) != WeightCount(v) {
		return false
	}
	for _, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// curve holds the two scalar constants governing the retrievability and
// interval formulas.
type curve struct {
	decay  float64
	factor float64
}

// curveParams derives decay and factor from version and active weights.
// V5 uses the fixed FSRS-4.5/5 power curve. V6 trains the decay as
// w[20]; a non-positive or non-finite value falls back to the default
// weight at that index. The factor is chosen so that the retrievability
// formula equals 0.9 exactly at elapsed == stability.
func curveParams(v Version, w []float64) curve {
	if v != V6 {
		return curve{decay: -0.5, factor: 19.0 / 81.0}
	}

	d := defaultWeightsV6[20]
	if len(w) > 20 && w[20] > 0 && !math.IsInf(w[20], 0) && !math.IsNaN(w[20]) {
		d = w[20]
	}
	decay := -d
	return curve{decay: decay, factor: math.Pow(0.9, 1.0/decay) - 1.0}
}

func clampFloat(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
