package bench_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	fuzzstream "github.com/yyyoichi/dfuzzstream"
)

// BenchmarkSummarize runs a table-driven set of summarize benchmarks over a
// stream of drifting 2D blobs.
func BenchmarkSummarize(b *testing.B) {
	test := []struct {
		name string
		opts []fuzzstream.Option
	}{
		{name: "max10", opts: []fuzzstream.Option{
			fuzzstream.WithMaxFMiCs(10),
		}},
		{name: "max100", opts: []fuzzstream.Option{
			fuzzstream.WithMaxFMiCs(100),
		}},
		{name: "max100_R0.5", opts: []fuzzstream.Option{
			fuzzstream.WithMaxFMiCs(100),
			fuzzstream.WithRadiusFactor(0.5),
		}},
		{name: "max500", opts: []fuzzstream.Option{
			fuzzstream.WithMaxFMiCs(500),
		}},
	}

	points := createStream(10000, 2)

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			s, err := fuzzstream.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Summarizer instance (%s): %v", tt.name, err)
			}
			i := 0
			for b.Loop() {
				if err := s.Summarize(points[i%len(points)], float64(i)); err != nil {
					b.Fatalf("Failed to summarize point (%s): %v", tt.name, err)
				}
				i++
			}
			b.ReportMetric(float64(s.Len()), "fmics")
		})
	}
}

func BenchmarkSummarize_Dimensions(b *testing.B) {
	for _, dim := range []int{2, 16, 128} {
		b.Run(fmt.Sprintf("dim%d", dim), func(b *testing.B) {
			points := createStream(5000, dim)
			s, err := fuzzstream.New(fuzzstream.WithMaxFMiCs(50))
			if err != nil {
				b.Fatal(err)
			}
			i := 0
			for b.Loop() {
				if err := s.Summarize(points[i%len(points)], float64(i)); err != nil {
					b.Fatal(err)
				}
				i++
			}
		})
	}
}

// createStream creates n points around five slowly moving centers with
// occasional uniform noise
func createStream(n, dim int) [][]float64 {
	r := rand.New(rand.NewPCG(42, 7))
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dim)
		if i%10 == 9 {
			for d := range p {
				p[d] = r.Float64()*400 - 200
			}
		} else {
			c := float64(i%5)*40 + float64(i)/500
			for d := range p {
				p[d] = c + r.NormFloat64()*2
			}
		}
		points[i] = p
	}
	return points
}
