package fuzzstream

// Stats counts what a summarizer has done with the points it received.
type Stats struct {
	// Points is the number of accepted points.
	Points int
	// Rejected is the number of points refused by validation.
	Rejected int
	// Created counts new micro-clusters, including those seeded below MinFMiCs.
	Created int
	Outliers int
	// Assigned counts points that were spread over the existing micro-clusters.
	Assigned int
	Evicted  int
	// Merged is the number of pairwise merges.
	Merged int
}
