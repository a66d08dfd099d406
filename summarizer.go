package fuzzstream

import (
	"fmt"
	"math"
	"slices"

	"github.com/yyyoichi/dfuzzstream/internal/distance"
	"github.com/yyyoichi/dfuzzstream/internal/fmic"
	"github.com/yyyoichi/dfuzzstream/internal/membership"
	"github.com/yyyoichi/dfuzzstream/internal/merge"
)

// SummarizeAll summarizes points in order, using each point's index as its
// timestamp, and returns the resulting micro-clusters.
// This is a convenience function that creates a Summarizer instance and calls its Summarize method.
func SummarizeAll(points [][]float64, opts ...Option) ([]FMiC, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for i, p := range points {
		if err := s.Summarize(p, float64(i)); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	return s.Summary(), nil
}

// Summarizer maintains a bounded set of fuzzy micro-clusters over a stream
// of points. It is not safe for concurrent use; see SyncSummarizer.
type Summarizer struct {
	minFMiCs, maxFMiCs int
	mergeThreshold     float64
	radiusFactor       float64
	m                  float64

	// dim is fixed by the first accepted point.
	dim   int
	fmics []*fmic.FMiC
	stats Stats
}

// New initializes a summarizer.
// The capacity bounds, merge threshold, radius factor and fuzzifier can be
// optionally specified. For default values, refer to the init function.
func New(opts ...Option) (*Summarizer, error) {
	s := new(Summarizer)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Summarize ingests one point observed at timestamp.
//
// Process:
//  1. While fewer than MinFMiCs micro-clusters exist, the point becomes a new one.
//  2. Otherwise the point is compared with each micro-cluster's acceptance
//     radius. Every micro-cluster that accepts it is touched with timestamp.
//  3. If none accepts it, the point is an outlier: the oldest micro-cluster is
//     evicted when at capacity and the point becomes a new micro-cluster.
//  4. If any accepts it, the point is assigned to every micro-cluster weighted
//     by its fuzzy membership degree.
//  5. Overlapping micro-clusters are merged.
//
// Returns an error and leaves the state unchanged if the point is empty,
// contains NaN or Inf, or differs in dimensionality from the first point.
func (s *Summarizer) Summarize(values []float64, timestamp float64) error {
	if err := s.check(values, timestamp); err != nil {
		s.stats.Rejected++
		Logf("fuzzstream: rejected point at %v: %v", timestamp, err)
		return err
	}
	if s.dim == 0 {
		s.dim = len(values)
	}
	s.stats.Points++

	if len(s.fmics) < s.minFMiCs {
		s.create(values, timestamp)
		return nil
	}

	var (
		centers = s.centers()
		dist    = distance.From(values, centers)
		outlier = true
	)
	for i, f := range s.fmics {
		if dist[i] <= s.acceptance(i, centers) {
			outlier = false
			f.Touch(timestamp)
		}
	}

	if outlier {
		s.stats.Outliers++
		if len(s.fmics) >= s.maxFMiCs {
			s.evict()
		}
		s.create(values, timestamp)
	} else {
		s.stats.Assigned++
		u := membership.Compute(dist, s.m)
		for i, f := range s.fmics {
			f.Assign(values, u[i], dist[i])
		}
	}

	var merges int
	s.fmics, merges = merge.Pass(s.fmics, s.mergeThreshold)
	if merges > 0 {
		s.stats.Merged += merges
		Logf("fuzzstream: merged %d pairs, %d micro-clusters left", merges, len(s.fmics))
	}
	return nil
}

// Summary returns a copy of the current micro-clusters.
func (s *Summarizer) Summary() []FMiC {
	out := make([]FMiC, len(s.fmics))
	for i, f := range s.fmics {
		out[i] = snapshot(f)
	}
	return out
}

// Len returns the number of live micro-clusters.
func (s *Summarizer) Len() int { return len(s.fmics) }

// Dim returns the dimensionality fixed by the first point, or 0.
func (s *Summarizer) Dim() int { return s.dim }

// Stats returns the counters accumulated since construction or the last Reset.
func (s *Summarizer) Stats() Stats { return s.stats }

// Reset drops every micro-cluster, the fixed dimensionality and the counters.
// The configuration is kept.
func (s *Summarizer) Reset() {
	s.fmics = nil
	s.dim = 0
	s.stats = Stats{}
}

func (s *Summarizer) init(opts ...Option) error {
	s.minFMiCs = 5
	s.maxFMiCs = 100
	s.mergeThreshold = 1.0
	s.radiusFactor = 1.0
	s.m = 2.0
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.minFMiCs > s.maxFMiCs {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidCapacity, s.minFMiCs, s.maxFMiCs)
	}
	return nil
}

func (s *Summarizer) check(values []float64, timestamp float64) error {
	if math.IsNaN(timestamp) || math.IsInf(timestamp, 0) {
		return fmt.Errorf("%w: timestamp is %v", ErrNonFinite, timestamp)
	}
	return distance.Check(values, s.dim)
}

func (s *Summarizer) create(values []float64, timestamp float64) {
	s.fmics = append(s.fmics, fmic.New(values, timestamp))
	s.stats.Created++
}

func (s *Summarizer) centers() [][]float64 {
	centers := make([][]float64, len(s.fmics))
	for i, f := range s.fmics {
		centers[i] = f.CenterView()
	}
	return centers
}

// acceptance returns the radius within which the micro-cluster at i accepts
// a point. A micro-cluster without spread borrows the distance to its
// nearest neighbour.
func (s *Summarizer) acceptance(i int, centers [][]float64) float64 {
	if r := s.fmics[i].Radius(); r != 0 {
		return r * s.radiusFactor
	}
	return distance.Nearest(i, centers)
}

// evict removes the micro-cluster with the smallest timestamp.
// On ties the lowest index goes.
func (s *Summarizer) evict() {
	oldest := 0
	for i, f := range s.fmics {
		if f.Timestamp() < s.fmics[oldest].Timestamp() {
			oldest = i
		}
	}
	Logf("fuzzstream: evicting micro-cluster %d, last seen at %v", oldest, s.fmics[oldest].Timestamp())
	s.fmics = slices.Delete(s.fmics, oldest, oldest+1)
	s.stats.Evicted++
}
