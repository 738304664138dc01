// Package fsrs implements the FSRS v5/v6 spaced-repetition scheduling
// algorithm: memory-state updates, retrievability, interval calculation,
// scheduling with optional fuzz, and four-grade previews.
package fsrs

// Version selects the FSRS parameterization.
type Version int

const (
	V5 Version = 5
	V6 Version = 6
)

// defaultWeightsV5 are the reference FSRS-5 model weights (w[0]..w[18]).
var defaultWeightsV5 = [19]float64{
	0.40255,  // w0  - initial stability for Again
	1.18385,  // w1  - initial stability for Hard
	3.173,    // w2  - initial stability for Good
	15.69105, // w3  - initial stability for Easy
	7.1949,   // w4  - initial difficulty mean
	0.5345,   // w5  - initial difficulty slope
	1.4604,   // w6  - difficulty update step
	0.0046,   // w7  - difficulty mean-reversion weight
	1.54575,  // w8  - recall stability: exp(w8)
	0.1192,   // w9  - recall stability: S^(-w9)
	1.01925,  // w10 - recall stability: exp(w10*(1-R)) - 1
	1.9395,   // w11 - forget stability: multiplier
	0.11,     // w12 - forget stability: D^(-w12)
	0.29605,  // w13 - forget stability: (S+1)^w13 - 1
	2.2698,   // w14 - forget stability: exp(w14*(1-R))
	0.2315,   // w15 - hard penalty
	2.9898,   // w16 - easy bonus
	0.51655,  // w17 - short-term stability slope
	0.6621,   // w18 - short-term stability offset
}

// defaultWeightsV6 are the reference FSRS-6 model weights (w[0]..w[20]).
// w[19] is the short-term stability exponent, w[20] the trainable decay.
var defaultWeightsV6 = [21]float64{
	0.2172,  // w0
	1.1771,  // w1
	3.2602,  // w2
	16.1507, // w3
	7.0114,  // w4
	0.57,    // w5
	2.0966,  // w6
	0.0069,  // w7
	1.5261,  // w8
	0.112,   // w9
	1.0178,  // w10
	1.849,   // w11
	0.1133,  // w12
	0.3127,  // w13
	2.2934,  // w14
	0.2191,  // w15
	3.0004,  // w16
	0.7536,  // w17
	0.3332,  // w18
	0.1437,  // w19 - short-term stability exponent
	0.2,     // w20 - decay
}

// WeightCount returns the number of model weights for a version.
func WeightCount(v Version) int {
	if v == V6 {
		return len(defaultWeightsV6)
	}
	return len(defaultWeightsV5)
}

// DefaultWeights returns a copy of the default weight vector for a version.
func DefaultWeights(v Version) []float64 {
	if v == V6 {
		w := defaultWeightsV6
		return w[:]
	}
	w := defaultWeightsV5
	return w[:]
}
