package geom

import (
	"math"

	chart "github.com/vdobler/surveychart"
)

// -------------------------------------------------------------------------
// Geom Pie

// Pie lays out pie and donut charts.
type Pie struct {
	// StartAngle is the angle in radians the first slice starts at.
	// Angles grow from the positive x axis towards the positive y
	// axis, which is clockwise in a top-down pixel space.
	StartAngle float64

	Theme chart.Theme
}

// Slice is one wedge of a pie. Percent is in [0, 100].
type Slice struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Fill    string  `json:"fill"`
}

// Layout returns one slice per distinct label of points, in first-seen
// order. Values sharing a label are summed; negative and NaN values are
// ignored. If nothing positive remains all slices have zero extent.
func (p Pie) Layout(points []chart.LabeledPoint) []Slice {
	var labels chart.StringSet
	var slices []Slice
	var first []chart.LabeledPoint
	total := 0.0
	for _, pt := range points {
		if labels.Add(pt.Label) {
			slices = append(slices, Slice{Label: pt.Label})
			first = append(first, pt)
		}
		if !(pt.Value > 0) || math.IsInf(pt.Value, 0) {
			continue
		}
		slices[labels.Index(pt.Label)].Value += pt.Value
		total += pt.Value
	}

	a := p.StartAngle
	for i := range slices {
		s := &slices[i]
		s.Start = a
		if total > 0 {
			s.Percent = 100 * s.Value / total
			a += 2 * math.Pi * s.Value / total
		}
		s.End = a
		s.Fill = chart.Hex(p.Theme.PointColor(first[i], i))
	}
	return slices
}

// Wedge returns the closed outline of s for a pie centred at c with
// radius r. A slice spanning the full circle is drawn as a circle.
func (s Slice) Wedge(c chart.Point, r float64) chart.Path {
	var path chart.Path
	sweep := s.End - s.Start
	if sweep <= 0 || r <= 0 {
		return path
	}
	at := func(a float64) chart.Point {
		return chart.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}

	full := sweep >= 2*math.Pi-1e-9
	if full {
		path.Move(at(s.Start))
	} else {
		path.Move(c)
		path.Line(at(s.Start))
	}

	// Cubic arcs of at most a quarter circle.
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3 * math.Tan(step/4) * r
	for i := 0; i < n; i++ {
		a0 := s.Start + float64(i)*step
		a1 := a0 + step
		p0, p1 := at(a0), at(a1)
		c1 := chart.Pt(p0.X-k*math.Sin(a0), p0.Y+k*math.Cos(a0))
		c2 := chart.Pt(p1.X+k*math.Sin(a1), p1.Y-k*math.Cos(a1))
		path.CubeTo(c1, c2, p1)
	}
	path.Close()
	return path
}
