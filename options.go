package fuzzstream

import (
	"fmt"
	"math"
)

type Option func(*Summarizer) error

// WithMinFMiCs sets how many micro-clusters are created unconditionally from
// the first points of the stream before outlier detection starts.
// The default is 5. It must not be negative or exceed the maximum.
func WithMinFMiCs(n int) Option {
	return func(s *Summarizer) error {
		if n < 0 {
			return fmt.Errorf("%w: min %d", ErrInvalidCapacity, n)
		}
		s.minFMiCs = n
		return nil
	}
}

// WithMaxFMiCs bounds the number of live micro-clusters. When an outlier
// arrives at capacity, the least recently touched micro-cluster is evicted.
// The default is 100. It must be at least 1.
func WithMaxFMiCs(n int) Option {
	return func(s *Summarizer) error {
		if n < 1 {
			return fmt.Errorf("%w: max %d", ErrInvalidCapacity, n)
		}
		s.maxFMiCs = n
		return nil
	}
}

// WithMergeThreshold sets the similarity at which two micro-clusters are
// merged. Similarity is the sum of both radii divided by the distance between
// the centers, so 1 merges clusters whose radii touch.
// The default is 1.0.
func WithMergeThreshold(threshold float64) Option {
	return func(s *Summarizer) error {
		if math.IsNaN(threshold) || threshold < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
		}
		s.mergeThreshold = threshold
		return nil
	}
}

// WithRadiusFactor scales the radius of micro-clusters that have absorbed
// more than one point when deciding whether a point is an outlier.
// Larger values make outliers rarer. The default is 1.0.
func WithRadiusFactor(factor float64) Option {
	return func(s *Summarizer) error {
		if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidRadiusFactor, factor)
		}
		s.radiusFactor = factor
		return nil
	}
}

// WithFuzzifier sets the fuzzy c-means exponent m. Values close to 1 give
// nearly hard memberships; larger values spread a point over more
// micro-clusters. The default is 2.0. It must be greater than 1.
func WithFuzzifier(m float64) Option {
	return func(s *Summarizer) error {
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 1 {
			return fmt.Errorf("%w: %v", ErrInvalidFuzzifier, m)
		}
		s.m = m
		return nil
	}
}
