package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"

	chart "github.com/vdobler/surveychart"
)

// bezierAt evaluates the cubic of cmd starting in p0 at t.
func bezierAt(p0 chart.Point, cmd chart.PathCmd, t float64) chart.Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return chart.Pt(
		a*p0.X+b*cmd.C1.X+c*cmd.C2.X+d*cmd.Pos.X,
		a*p0.Y+b*cmd.C1.Y+c*cmd.C2.Y+d*cmd.Pos.Y,
	)
}

var allCurves = []Curve{Linear, Monotone, Cardinal, Basis}

func TestInterpolateDegenerate(t *testing.T) {
	for _, mode := range allCurves {
		assert.Empty(t, Interpolate(nil, mode), mode.String())
		assert.Equal(t, "", Interpolate(nil, mode).String(), mode.String())
		assert.Equal(t, "M 1,2", Interpolate([]chart.Point{{X: 1, Y: 2}}, mode).String(), mode.String())
		assert.Equal(t, "M 0,0 L 10,5",
			Interpolate([]chart.Point{{X: 0, Y: 0}, {X: 10, Y: 5}}, mode).String(), mode.String())
	}
}

func TestInterpolateLinear(t *testing.T) {
	pts := []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1.5}}
	assert.Equal(t, "M 0,0 L 1,2 L 2,1.5", Interpolate(pts, Linear).String())
}

func TestInterpolateMonotoneStaysInRange(t *testing.T) {
	pts := []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 5}, {X: 4, Y: 5.5}, {X: 5, Y: 0}, {X: 7, Y: 0.2}, {X: 8, Y: 9}}
	path := Interpolate(pts, Monotone)
	require.Len(t, path, len(pts))
	assert.Equal(t, chart.MoveTo, path[0].Op)

	for i := 1; i < len(path); i++ {
		cmd := path[i]
		require.Equal(t, chart.CurveTo, cmd.Op)
		p0, p1 := pts[i-1], pts[i]
		assert.Equal(t, p1, cmd.Pos)
		lo, hi := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
		for k := 0; k <= 50; k++ {
			q := bezierAt(p0, cmd, float64(k)/50)
			assert.True(t, q.Y >= lo-1e-9 && q.Y <= hi+1e-9,
				"segment %d overshoots: y=%g not in [%g,%g]", i, q.Y, lo, hi)
			assert.True(t, q.X >= p0.X-1e-9 && q.X <= p1.X+1e-9)
		}
	}
}

func TestInterpolateMonotonePlateau(t *testing.T) {
	pts := []chart.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	path := Interpolate(pts, Monotone)
	for _, cmd := range path[1:] {
		assert.Equal(t, 2.0, cmd.C1.Y)
		assert.Equal(t, 2.0, cmd.C2.Y)
	}
}

func TestInterpolateCardinal(t *testing.T) {
	pts := []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 3}}
	path := Interpolate(pts, Cardinal)
	require.Len(t, path, len(pts))
	for i, cmd := range path[1:] {
		assert.Equal(t, chart.CurveTo, cmd.Op)
		assert.Equal(t, pts[i+1], cmd.Pos)
	}

	first := path[1]
	assert.InDelta(t, 1.0/6, first.C1.X, 1e-12)
	assert.InDelta(t, 1.0/6, first.C1.Y, 1e-12)
	assert.InDelta(t, 2.0/3, first.C2.X, 1e-12)
	assert.InDelta(t, 1.0, first.C2.Y, 1e-12)
}

func TestInterpolateBasis(t *testing.T) {
	pts := []chart.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 0}, {X: 6, Y: 2}}
	path := Interpolate(pts, Basis)
	require.Len(t, path, 3)
	assert.Equal(t, chart.Pt(0, 0), path[0].Pos)
	assert.Equal(t, chart.Pt(3, 1), path[1].Pos)
	assert.Equal(t, chart.Pt(6, 2), path[2].Pos)

	// The quadratic (0,0) (2,2) (3,1) as a cubic.
	assert.InDelta(t, 4.0/3, path[1].C1.X, 1e-12)
	assert.InDelta(t, 4.0/3, path[1].C1.Y, 1e-12)
	assert.InDelta(t, 7.0/3, path[1].C2.X, 1e-12)
	assert.InDelta(t, 5.0/3, path[1].C2.Y, 1e-12)

	path = Interpolate(pts[:3], Basis)
	require.Len(t, path, 2)
	assert.Equal(t, pts[2], path[1].Pos)
}

func TestInterpolateKeepsInput(t *testing.T) {
	pts := []chart.Point{{X: 0, Y: 3}, {X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 1}}
	orig := append([]chart.Point(nil), pts...)
	for _, mode := range allCurves {
		Interpolate(pts, mode)
	}
	assert.Equal(t, orig, pts)
}

func TestInterpolateXY(t *testing.T) {
	xys := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}
	assert.Equal(t, "M 0,0 L 1,1", InterpolateXY(xys, Cardinal).String())
	assert.Nil(t, InterpolateXY(nil, Linear))
}

func TestParseCurve(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Curve
	}{
		{"linear", Linear},
		{"Monotone", Monotone},
		{" cardinal ", Cardinal},
		{"catmull-rom", Cardinal},
		{"BASIS", Basis},
		{"", Linear},
	} {
		got, err := ParseCurve(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseCurve("bezier")
	assert.Error(t, err)

	for _, c := range allCurves {
		got, err := ParseCurve(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "Curve(9)", Curve(9).String())
}
