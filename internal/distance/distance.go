package distance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrEmpty     = errors.New("point has no dimensions")
	ErrDimension = errors.New("point dimensionality mismatch")
	ErrNonFinite = errors.New("point contains a non-finite value")
)

// Euclidean returns the L2 distance between a and b.
// Both vectors must have the same length.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Check validates a point against the expected dimensionality.
// A dim of 0 accepts any non-empty point.
func Check(point []float64, dim int) error {
	if len(point) == 0 {
		return ErrEmpty
	}
	if dim > 0 && len(point) != dim {
		return fmt.Errorf("%w: got %d, want %d", ErrDimension, len(point), dim)
	}
	for i, v := range point {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d is %v", ErrNonFinite, i, v)
		}
	}
	return nil
}

// From returns the distances from point to every center in order.
func From(point []float64, centers [][]float64) []float64 {
	d := make([]float64, len(centers))
	for i, c := range centers {
		d[i] = Euclidean(point, c)
	}
	return d
}

// Nearest returns the distance from centers[at] to the closest other center.
// It returns 0 when there is no other center.
func Nearest(at int, centers [][]float64) float64 {
	nearest := math.Inf(1)
	for i, c := range centers {
		if i == at {
			continue
		}
		if d := Euclidean(centers[at], c); d < nearest {
			nearest = d
		}
	}
	if math.IsInf(nearest, 1) {
		return 0
	}
	return nearest
}
