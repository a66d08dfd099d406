package merge

import (
	"math"
	"slices"

	"github.com/yyyoichi/dfuzzstream/internal/distance"
	"github.com/yyyoichi/dfuzzstream/internal/fmic"
)

// MaxSimilarity is the similarity of two micro-clusters sharing a center.
// It is the largest finite float64 so that sorting stays well defined.
const MaxSimilarity = math.MaxFloat64

// Pair is a merge candidate. I < J index the input slice.
type Pair struct {
	I, J       int
	Similarity float64
}

// Similarity returns (ra + rb) / |ca - cb|, or MaxSimilarity when the centers
// coincide. The result is never infinite.
func Similarity(a, b *fmic.FMiC) float64 {
	dissimilarity := distance.Euclidean(a.CenterView(), b.CenterView())
	if dissimilarity == 0 {
		return MaxSimilarity
	}
	return math.Min(MaxSimilarity, (a.Radius()+b.Radius())/dissimilarity)
}

// Candidates returns every pair whose similarity reaches threshold, most
// similar first. Pairs with equal similarity keep their (I, J) order.
func Candidates(fmics []*fmic.FMiC, threshold float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(fmics)-1; i++ {
		for j := i + 1; j < len(fmics); j++ {
			if s := Similarity(fmics[i], fmics[j]); s >= threshold {
				pairs = append(pairs, Pair{I: i, J: j, Similarity: s})
			}
		}
	}
	slices.SortStableFunc(pairs, func(a, b Pair) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})
	return pairs
}

// Pass runs one greedy merge pass. Each micro-cluster takes part in at most
// one merge, so chains of overlapping clusters settle over later passes.
// The result holds the untouched micro-clusters in input order followed by
// the merged ones. The input slice is not modified.
func Pass(fmics []*fmic.FMiC, threshold float64) (result []*fmic.FMiC, merges int) {
	var (
		consumed = make([]bool, len(fmics))
		merged   []*fmic.FMiC
	)
	for _, p := range Candidates(fmics, threshold) {
		if consumed[p.I] || consumed[p.J] {
			continue
		}
		consumed[p.I], consumed[p.J] = true, true
		merged = append(merged, fmic.Merge(fmics[p.I], fmics[p.J]))
	}

	result = make([]*fmic.FMiC, 0, len(fmics)-len(merged))
	for i, f := range fmics {
		if !consumed[i] {
			result = append(result, f)
		}
	}
	return append(result, merged...), len(merged)
}
