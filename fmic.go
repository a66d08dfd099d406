package fuzzstream

import "github.com/yyyoichi/dfuzzstream/internal/fmic"

// FMiC is a snapshot of a fuzzy micro-cluster. Modifying it has no effect on
// the summarizer it came from.
type FMiC struct {
	Center    []float64
	Radius    float64
	Timestamp float64
	// Weight is the sum of membership degrees absorbed.
	Weight float64
	// Points is the number of points absorbed, regardless of membership.
	Points int
}

func snapshot(f *fmic.FMiC) FMiC {
	return FMiC{
		Center:    f.Center(),
		Radius:    f.Radius(),
		Timestamp: f.Timestamp(),
		Weight:    f.Weight(),
		Points:    f.Points(),
	}
}
