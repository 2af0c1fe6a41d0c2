package geom

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot/plotter"

	chart "github.com/vdobler/surveychart"
)

// Curve selects how Interpolate connects consecutive points.
type Curve int

const (
	// Linear connects the points by straight segments.
	Linear Curve = iota

	// Monotone uses a cubic Hermite spline whose tangents are chosen
	// such that the curve never leaves the y range of the two points
	// it connects. Points are expected in increasing x.
	Monotone

	// Cardinal is a Catmull-Rom spline (tension 0.5) through all
	// points.
	Cardinal

	// Basis smooths the polyline with quadratic pieces. It passes
	// through the first and last point only.
	Basis
)

var curveNames = []string{"linear", "monotone", "cardinal", "basis"}

func (c Curve) String() string {
	if c < 0 || int(c) >= len(curveNames) {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// ParseCurve returns the Curve named s, case insensitive.
func ParseCurve(s string) (Curve, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range curveNames {
		if s == name {
			return Curve(i), nil
		}
	}
	switch s {
	case "catmull-rom", "catmullrom":
		return Cardinal, nil
	case "", "straight":
		return Linear, nil
	}
	return Linear, fmt.Errorf("geom: unknown curve %q", s)
}

// CardinalTension is the tension of Cardinal curves.
const CardinalTension = 0.5

// Interpolate returns a path through pts.
//
// Zero points give an empty path, one point a single move, two points a
// straight segment regardless of mode.
func Interpolate(pts []chart.Point, mode Curve) chart.Path {
	var path chart.Path
	switch len(pts) {
	case 0:
		return path
	case 1:
		path.Move(pts[0])
		return path
	case 2:
		path.Move(pts[0])
		path.Line(pts[1])
		return path
	}

	path.Move(pts[0])
	switch mode {
	case Monotone:
		monotone(&path, pts)
	case Cardinal:
		cardinal(&path, pts)
	case Basis:
		basis(&path, pts)
	default:
		for _, p := range pts[1:] {
			path.Line(p)
		}
	}
	return path
}

// InterpolateXY is Interpolate for a gonum/plot XY source.
func InterpolateXY(xys plotter.XYer, mode Curve) chart.Path {
	if xys == nil {
		return nil
	}
	pts := make([]chart.Point, xys.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = xys.XY(i)
	}
	return Interpolate(pts, mode)
}

// monotone draws a cubic Hermite spline. The tangent at an interior
// point is the mean of the adjacent secant slopes, or 0 at a local
// extremum or plateau; end tangents equal the adjacent secant. The
// tangents are then limited as proposed by Fritsch and Carlson so each
// piece stays monotone.
func monotone(path *chart.Path, pts []chart.Point) {
	n := len(pts)
	secant := make([]float64, n-1)
	for i := range secant {
		dx := pts[i+1].X - pts[i].X
		if dx != 0 {
			secant[i] = (pts[i+1].Y - pts[i].Y) / dx
		}
	}

	m := make([]float64, n)
	m[0], m[n-1] = secant[0], secant[n-2]
	for i := 1; i < n-1; i++ {
		if secant[i-1]*secant[i] <= 0 {
			m[i] = 0
		} else {
			m[i] = (secant[i-1] + secant[i]) / 2
		}
	}

	for i, d := range secant {
		if d == 0 {
			m[i], m[i+1] = 0, 0
			continue
		}
		a, b := m[i]/d, m[i+1]/d
		if a < 0 {
			m[i], a = 0, 0
		}
		if b < 0 {
			m[i+1], b = 0, 0
		}
		if s := a*a + b*b; s > 9 {
			tau := 3 / math.Sqrt(s)
			m[i] = tau * a * d
			m[i+1] = tau * b * d
		}
	}

	for i := 0; i < n-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		h := (p1.X - p0.X) / 3
		path.CubeTo(
			chart.Pt(p0.X+h, p0.Y+m[i]*h),
			chart.Pt(p1.X-h, p1.Y-m[i+1]*h),
			p1,
		)
	}
}

// cardinal draws a Catmull-Rom spline; the missing neighbours of the
// end points are the end points themselves.
func cardinal(path *chart.Path, pts []chart.Point) {
	n := len(pts)
	k := CardinalTension / 3
	at := func(i int) chart.Point {
		if i < 0 {
			return pts[0]
		}
		if i >= n {
			return pts[n-1]
		}
		return pts[i]
	}
	for i := 0; i < n-1; i++ {
		p0, p1 := at(i), at(i+1)
		c1 := p0.Add(p1.Sub(at(i - 1)).Scale(k))
		c2 := p1.Sub(at(i + 2).Sub(p0).Scale(k))
		path.CubeTo(c1, c2, p1)
	}
}

// basis replaces every interior vertex by the midpoint to its successor
// and joins these midpoints by quadratic pieces controlled by the
// vertices.
func basis(path *chart.Path, pts []chart.Point) {
	n := len(pts)
	for i := 1; i < n-2; i++ {
		path.QuadTo(pts[i], pts[i].Mid(pts[i+1]))
	}
	path.QuadTo(pts[n-2], pts[n-1])
}
