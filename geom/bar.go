package geom

import (
	"math"

	chart "github.com/vdobler/surveychart"
)

// Position determines how elements sharing the same label are arranged.
type Position int

const (
	// Dodge places the elements of one label side by side.
	Dodge Position = iota

	// Stack stacks the elements of one label on top of each other.
	// Positive and negative values are stacked separately.
	Stack

	// Fill is Stack normalized to a total height of 1 per label.
	Fill
)

// -------------------------------------------------------------------------
// Geom Bar

// Bars lays out bar charts: one band of X per label, bar heights on Y.
type Bars struct {
	X        chart.Band
	Y        *chart.Scale
	Position Position
	Theme    chart.Theme
}

// Bar is a placed bar. Rect is in pixel space with Min <= Max.
type Bar struct {
	Label string     `json:"label"`
	Group string     `json:"group"`
	Value float64    `json:"value"`
	Rect  chart.Rect `json:"rect"`
	Fill  string     `json:"fill"`
}

// spans returns the data space extent [lo, hi] of every bar.
func (b Bars) spans(points []chart.LabeledPoint) (lo, hi []float64) {
	lo, hi = make([]float64, len(points)), make([]float64, len(points))
	posSum := make(map[string]float64)
	negSum := make(map[string]float64)
	for i, p := range points {
		v := p.Value
		if math.IsNaN(v) {
			continue
		}
		if v > 0 {
			lo[i], hi[i] = 0, v
		} else {
			lo[i], hi[i] = v, 0
		}
		if b.Position == Stack || b.Position == Fill {
			if v > 0 {
				r := posSum[p.Label]
				posSum[p.Label] = r + v
				lo[i], hi[i] = r, r+v
			} else {
				r := negSum[p.Label]
				negSum[p.Label] = r + v
				lo[i], hi[i] = r+v, r
			}
		}
	}

	if b.Position == Fill {
		for i, p := range points {
			if total := posSum[p.Label] - negSum[p.Label]; total > 0 {
				lo[i] /= total
				hi[i] /= total
			}
		}
	}
	return lo, hi
}

// Extent returns the data range Y must cover for points, always
// including 0.
func (b Bars) Extent(points []chart.LabeledPoint) (lo, hi float64) {
	los, his := b.spans(points)
	for i := range los {
		lo = math.Min(lo, los[i])
		hi = math.Max(hi, his[i])
	}
	return lo, hi
}

// Layout places one bar per point. Points with a label unknown to X
// and NaN values are dropped. A nil Y is trained on Extent and spans
// [0, 1].
func (b Bars) Layout(points []chart.LabeledPoint) []Bar {
	y := b.Y
	if y == nil {
		y = chart.NewScale(0, 1)
		y.Train(b.Extent(points))
		y.Prepare(0)
	}
	lo, hi := b.spans(points)
	groups := chart.NewStringSetFrom(chart.GroupNames(points))

	barsAt := make(map[string]int)
	if b.Position == Dodge {
		for _, p := range points {
			if _, ok := b.X.Pos(p.Label); ok && !math.IsNaN(p.Value) {
				barsAt[p.Label]++
			}
		}
	}
	drawnAt := make(map[string]int)

	var bars []Bar
	for i, p := range points {
		x, ok := b.X.Pos(p.Label)
		if !ok || math.IsNaN(p.Value) {
			continue
		}
		w := b.X.Width()
		if b.Position == Dodge {
			n := barsAt[p.Label]
			w /= float64(n)
			x += float64(drawnAt[p.Label]) * w
			drawnAt[p.Label]++
		}
		y0, y1 := y.Pos(lo[i]), y.Pos(hi[i])
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		bars = append(bars, Bar{
			Label: p.Label,
			Group: p.GroupName(),
			Value: p.Value,
			Rect:  chart.Rect{Min: chart.Pt(x, y0), Max: chart.Pt(x+w, y1)},
			Fill:  chart.Hex(b.Theme.PointColor(p, groups.Index(p.GroupName()))),
		})
	}
	return bars
}
