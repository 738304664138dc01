package fsrs

import (
	"math"
	"testing"
)

func TestResolve_Defaults(t *testing.T) {
	p := Params{}.Resolve()

	if p.Version != V5 {
		t.Errorf("version = %v, want V5", p.Version)
	}
	if p.RequestedRetention != DefaultRetention {
		t.Errorf("retention = %v, want %v", p.RequestedRetention, DefaultRetention)
	}
	if len(p.Weights) != WeightCount(V5) {
		t.Errorf("weights len = %d, want %d", len(p.Weights), WeightCount(V5))
	}
	if p.LapseMinIntervalDays != 0 {
		t.Errorf("lapseMin = %d, want 0", p.LapseMinIntervalDays)
	}
	if p.MaxIntervalDays != DefaultMaxIntervalDays {
		t.Errorf("maxInterval = %d, want %d", p.MaxIntervalDays, DefaultMaxIntervalDays)
	}
}

func TestResolve_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want func(Params) bool
	}{
		{
			name: "unknown version falls back to V5",
			in:   Params{Version: 7},
			want: func(p Params) bool { return p.Version == V5 },
		},
		{
			name: "retention clamped high",
			in:   Params{RequestedRetention: 1.5},
			want: func(p Params) bool { return p.RequestedRetention == MaxRetention },
		},
		{
			name: "retention clamped low",
			in:   Params{RequestedRetention: 0.0001},
			want: func(p Params) bool { return p.RequestedRetention == MinRetention },
		},
		{
			name: "negative lapse min clamped to 0",
			in:   Params{LapseMinIntervalDays: -3},
			want: func(p Params) bool { return p.LapseMinIntervalDays == 0 },
		},
		{
			name: "lapse min clamped to 7",
			in:   Params{LapseMinIntervalDays: 12},
			want: func(p Params) bool { return p.LapseMinIntervalDays == 7 },
		},
		{
			name: "negative max interval clamped to 1",
			in:   Params{MaxIntervalDays: -5},
			want: func(p Params) bool { return p.MaxIntervalDays == 1 },
		},
		{
			name: "huge max interval clamped to ceiling",
			in:   Params{MaxIntervalDays: 1 << 30},
			want: func(p Params) bool { return p.MaxIntervalDays == MaxIntervalCeilingDays },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Resolve()
			if !tt.want(got) {
				t.Errorf("Resolve(%+v) = %+v", tt.in, got)
			}
		})
	}
}

func TestResolve_WeightValidation(t *testing.T) {
	t.Run("wrong length is replaced silently", func(t *testing.T) {
		p := Params{Weights: []float64{1, 2, 3}}.Resolve()
		if len(p.Weights) != WeightCount(V5) {
			t.Errorf("weights len = %d, want %d", len(p.Weights), WeightCount(V5))
		}
	})

	t.Run("non-finite element is replaced silently", func(t *testing.T) {
		w := DefaultWeights(V5)
		w[8] = math.NaN()
		p := Params{Weights: w}.Resolve()
		if math.IsNaN(p.Weights[8]) {
			t.Error("NaN weight survived Resolve")
		}
	})

	t.Run("valid custom vector is kept", func(t *testing.T) {
		w := DefaultWeights(V5)
		w[0] = 0.5
		p := Params{Weights: w}.Resolve()
		if p.Weights[0] != 0.5 {
			t.Errorf("w[0] = %v, want 0.5", p.Weights[0])
		}
	})

	t.Run("v5-length vector under V6 is replaced", func(t *testing.T) {
		p := Params{Version: V6, Weights: DefaultWeights(V5)}.Resolve()
		if len(p.Weights) != WeightCount(V6) {
			t.Errorf("weights len = %d, want %d", len(p.Weights), WeightCount(V6))
		}
	})
}

func TestCurveParams_V5(t *testing.T) {
	c := curveParams(V5, DefaultWeights(V5))

	if c.decay != -0.5 {
		t.Errorf("decay = %v, want -0.5", c.decay)
	}
	if math.Abs(c.factor-19.0/81.0) > epsilon {
		t.Errorf("factor = %v, want 19/81", c.factor)
	}
}

func TestCurveParams_V6(t *testing.T) {
	w := DefaultWeights(V6)
	c := curveParams(V6, w)

	if c.decay != -w[20] {
		t.Errorf("decay = %v, want %v", c.decay, -w[20])
	}
	// factor is chosen so R(S, S) == 0.9 exactly.
	r := math.Pow(1+c.factor, c.decay)
	if math.Abs(r-0.9) > epsilon {
		t.Errorf("R at the reference interval = %v, want 0.9", r)
	}
}

func TestCurveParams_V6_DecayFallback(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		w := DefaultWeights(V6)
		w[20] = bad
		c := curveParams(V6, w)
		if c.decay != -defaultWeightsV6[20] {
			t.Errorf("w[20]=%v: decay = %v, want fallback %v", bad, c.decay, -defaultWeightsV6[20])
		}
	}
}
