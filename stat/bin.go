package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"

	chart "github.com/vdobler/surveychart"
)

// DefaultBinCount is the number of bins used by a zero Bin.
const DefaultBinCount = 30

// -------------------------------------------------------------------------
// Bin

// Bin groups a sample into Count equally wide bins spanning
// [min, max] of the sample and counts the occurrences per bin.
type Bin struct {
	// Count is the number of bins; values <= 0 select DefaultBinCount.
	Count int
}

// Histogram is the result of binning a sample.
type Histogram struct {
	N     int        `json:"n"` // number of binned values
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Width float64    `json:"width"`
	Bins  []BinCount `json:"bins"`
}

// BinCount is a single bin [Lo, Hi) of a histogram; the last bin
// includes Hi.
type BinCount struct {
	Lo      float64 `json:"lo"`
	Hi      float64 `json:"hi"`
	X       float64 `json:"x"` // center
	Count   int     `json:"count"`
	Density float64 `json:"density"` // Count / Width / N
	NCount  float64 `json:"ncount"`  // Count / largest Count
}

// Edges returns the Count+1 bin boundaries of h.
func (h Histogram) Edges() []float64 {
	if len(h.Bins) == 0 {
		return nil
	}
	edges := make([]float64, 0, len(h.Bins)+1)
	for _, b := range h.Bins {
		edges = append(edges, b.Lo)
	}
	return append(edges, h.Bins[len(h.Bins)-1].Hi)
}

// Apply bins s. A value v lands in bin floor((v-min)/width), the
// maximum is put into the last bin. A sample without range is binned
// over [min, min+1]. NaNs and infinities are ignored; an empty sample
// yields an empty Histogram.
func (b Bin) Apply(s chart.Sample) Histogram {
	s = finiteValues(s)
	min, max, mini, _ := chart.MinMax(s)
	if mini == -1 {
		return Histogram{}
	}
	numBins := b.Count
	if numBins <= 0 {
		numBins = DefaultBinCount
	}
	if min == max {
		max = min + 1
	}
	n64 := float64(numBins)
	binWidth := (max - min) / n64
	edges := make([]float64, numBins+1)
	overflow := math.IsInf(max-min, 0)
	if overflow {
		// The span exceeds float64, scale before subtracting.
		binWidth = max/n64 - min/n64
		for i := range edges {
			t := float64(i) / n64
			edges[i] = min*(1-t) + max*t
		}
		edges[0], edges[numBins] = min, max
	} else {
		floats.Span(edges, min, max)
	}

	x2bin := func(x float64) int {
		f := (x - min) / binWidth
		if overflow {
			f = x/binWidth - min/binWidth
		}
		switch {
		case math.IsNaN(f) || f < 0:
			return 0
		case f >= n64:
			return numBins - 1
		}
		return int(math.Floor(f))
	}

	counts := make([]int, numBins)
	n, maxcount := 0, 0
	for _, x := range s {
		bin := x2bin(x)
		counts[bin]++
		n++
		if counts[bin] > maxcount {
			maxcount = counts[bin]
		}
	}

	h := Histogram{N: n, Min: min, Max: max, Width: binWidth, Bins: make([]BinCount, numBins)}
	for i, count := range counts {
		h.Bins[i] = BinCount{
			Lo:      edges[i],
			Hi:      edges[i+1],
			X:       edges[i]/2 + edges[i+1]/2,
			Count:   count,
			Density: float64(count) / binWidth / float64(n),
			NCount:  float64(count) / float64(maxcount),
		}
	}
	return h
}

func finiteValues(s chart.Sample) chart.Sample {
	out := make(chart.Sample, 0, len(s))
	for _, x := range s {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}
