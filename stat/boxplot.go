package stat

import (
	chart "github.com/vdobler/surveychart"
)

// DefaultCoef is the whisker coefficient used by a zero BoxPlot.
const DefaultCoef = 1.5

// -------------------------------------------------------------------------
// BoxPlot

// BoxPlot computes the components of a box and whisker plot.
type BoxPlot struct {
	// Coef scales the IQR to obtain the outlier fences
	// Q1 - Coef*IQR and Q3 + Coef*IQR. Zero selects DefaultCoef.
	Coef float64
}

// Box is the box plot of one sample. Min and Max are the whisker ends:
// the extremes of the values within the fences. It holds
// Min <= Q1 <= Median <= Q3 <= Max.
type Box struct {
	Label string `json:"label,omitempty"`
	Group string `json:"group,omitempty"`

	N          int     `json:"n"`
	Min        float64 `json:"min"`
	Q1         float64 `json:"q1"`
	Median     float64 `json:"median"`
	Q3         float64 `json:"q3"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	LowerFence float64 `json:"lowerFence"`
	UpperFence float64 `json:"upperFence"`

	// Outliers are the values outside the fences in ascending order.
	Outliers []float64 `json:"outliers"`
}

// Empty reports whether b was computed from no data.
func (b Box) Empty() bool { return b.N == 0 }

// Apply computes the box plot of s. An empty sample yields an empty Box.
func (bp BoxPlot) Apply(s chart.Sample) Box {
	if len(s) == 0 {
		return Box{}
	}
	d := sortedCopy(s)
	sum := describeSorted(d)

	coef := bp.Coef
	if coef == 0 {
		coef = DefaultCoef
	}
	iqr := sum.IQR()
	lo, hi := sum.Q1-coef*iqr, sum.Q3+coef*iqr

	b := Box{
		N:          sum.N,
		Q1:         sum.Q1,
		Median:     sum.Median,
		Q3:         sum.Q3,
		Mean:       sum.Mean,
		LowerFence: lo,
		UpperFence: hi,
	}

	// Compute whisker ends and outliers.
	b.Min, b.Max = sum.Max, sum.Min
	inside := false
	for _, y := range d {
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
			continue
		}
		inside = true
		if y < b.Min {
			b.Min = y
		}
		if y > b.Max {
			b.Max = y
		}
	}
	if !inside {
		b.Min, b.Max = sum.Min, sum.Max
	}
	return b
}

// ApplyPoints computes one box per distinct (label, group) pair of
// points, in the order the pairs first appear.
func (bp BoxPlot) ApplyPoints(points []chart.LabeledPoint) []Box {
	samples := chart.SamplesByLabel(points)
	boxes := make([]Box, len(samples))
	for i, ls := range samples {
		boxes[i] = bp.Apply(ls.Values)
		boxes[i].Label, boxes[i].Group = ls.Label, ls.Group
	}
	return boxes
}
