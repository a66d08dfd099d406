package fuzzstream

import (
	"errors"

	"github.com/yyyoichi/dfuzzstream/internal/distance"
)

var (
	ErrInvalidFuzzifier    = errors.New("fuzzifier m must be a finite number greater than 1")
	ErrInvalidCapacity     = errors.New("invalid micro-cluster capacity")
	ErrInvalidThreshold    = errors.New("merge threshold must be a non-negative number")
	ErrInvalidRadiusFactor = errors.New("radius factor must be a non-negative number")

	ErrEmptyPoint        = distance.ErrEmpty
	ErrDimensionMismatch = distance.ErrDimension
	ErrNonFinite         = distance.ErrNonFinite
)
