package fmic

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FMiC is a fuzzy micro-cluster. It keeps only sufficient statistics of the
// points it has absorbed, so center and radius are recomputed from them after
// every update.
type FMiC struct {
	// cf is the membership-weighted linear sum of absorbed points.
	cf []float64
	// ssd is the membership-weighted sum of squared distances to the center.
	ssd float64
	// m is the sum of memberships, the effective weight.
	m float64
	// n is the number of absorbed points.
	n int

	center    []float64
	radius    float64
	timestamp float64
}

// New creates a singleton micro-cluster centered at point.
func New(point []float64, timestamp float64) *FMiC {
	return &FMiC{
		cf:        append([]float64(nil), point...),
		m:         1,
		n:         1,
		center:    append([]float64(nil), point...),
		timestamp: timestamp,
	}
}

// Assign incorporates point weighted by membership.
// distance is the distance from point to the center before the update.
func (f *FMiC) Assign(point []float64, membership, distance float64) {
	f.m += membership
	f.n++
	f.ssd += membership * distance * distance
	floats.AddScaled(f.cf, membership, point)
	f.update()
}

// Touch marks the micro-cluster as seen at timestamp. The stored timestamp
// never decreases.
func (f *FMiC) Touch(timestamp float64) {
	if timestamp > f.timestamp {
		f.timestamp = timestamp
	}
}

// Merge combines the statistics of a and b into a new micro-cluster.
// Neither argument is modified.
func Merge(a, b *FMiC) *FMiC {
	f := &FMiC{
		cf:        make([]float64, len(a.cf)),
		ssd:       a.ssd + b.ssd,
		m:         a.m + b.m,
		n:         a.n + b.n,
		timestamp: math.Max(a.timestamp, b.timestamp),
	}
	floats.AddTo(f.cf, a.cf, b.cf)
	f.update()
	return f
}

func (f *FMiC) update() {
	if f.center == nil || len(f.center) != len(f.cf) {
		f.center = make([]float64, len(f.cf))
	}
	floats.ScaleTo(f.center, 1/f.m, f.cf)
	f.radius = math.Sqrt(f.ssd / float64(f.n))
}

// Clone returns a deep copy.
func (f *FMiC) Clone() *FMiC {
	c := *f
	c.cf = append([]float64(nil), f.cf...)
	c.center = append([]float64(nil), f.center...)
	return &c
}

// Center returns a copy of the current center.
func (f *FMiC) Center() []float64 { return append([]float64(nil), f.center...) }

// CenterView returns the center without copying. Callers must not modify it.
func (f *FMiC) CenterView() []float64 { return f.center }

func (f *FMiC) Radius() float64 { return f.radius }

func (f *FMiC) Timestamp() float64 { return f.timestamp }

func (f *FMiC) Weight() float64 { return f.m }

func (f *FMiC) Points() int { return f.n }

func (f *FMiC) Dim() int { return len(f.cf) }
