package membership

import "math"

// Epsilon is added to every membership denominator so that a distance
// vector of only zeros cannot divide by zero. It is the smallest normal
// float64.
const Epsilon = 2.2250738585072014e-308

// Compute returns the fuzzy c-means membership degree of a point to each
// micro-cluster given its distances to their centers and the fuzzifier m.
//
//	u[j] = 1 / (sum over k with d[k] != 0 of (d[j]/d[k])^(2/(m-1)) + Epsilon)
//
// Zero distances are skipped in the sum. A point lying exactly on a center
// would get 1/Epsilon there, so every degree is capped at 1.
// m must be greater than 1.
func Compute(distances []float64, m float64) []float64 {
	var (
		exp = 2. / (m - 1.)
		u   = make([]float64, len(distances))
	)
	for j, dj := range distances {
		sum := Epsilon
		for _, dk := range distances {
			if dk != 0 {
				sum += math.Pow(dj/dk, exp)
			}
		}
		u[j] = math.Min(1, 1/sum)
	}
	return u
}
