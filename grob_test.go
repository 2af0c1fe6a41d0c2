package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestPoint(t *testing.T) {
	p, q := Pt(1, 2), Pt(4, -2)
	assert.Equal(t, Pt(5, 0), p.Add(q))
	assert.Equal(t, Pt(-3, 4), p.Sub(q))
	assert.Equal(t, Pt(2, 4), p.Scale(2))
	assert.Equal(t, Pt(2.5, 0), p.Mid(q))
	assert.Equal(t, vg.Point{X: 1, Y: 2}, p.VG())

	r := Rect{Min: Pt(1, 2), Max: Pt(4, 8)}
	assert.Equal(t, 3.0, r.Width())
	assert.Equal(t, 6.0, r.Height())
}

func TestPathString(t *testing.T) {
	var path Path
	assert.Equal(t, "", path.String())

	path.Move(Pt(0, 0))
	path.Line(Pt(10, 5))
	path.CubeTo(Pt(12, 5), Pt(14, 8), Pt(16, 8))
	path.Close()
	assert.Equal(t, "M 0,0 L 10,5 C 12,5 14,8 16,8 Z", path.String())

	path = nil
	path.Move(Pt(0.5, -1.25))
	path.Line(Pt(1e-3, 123456.75))
	assert.Equal(t, "M 0.5,-1.25 L 0.001,123456.75", path.String())
}

func TestPathQuadTo(t *testing.T) {
	var path Path
	path.Move(Pt(0, 0))
	path.QuadTo(Pt(3, 3), Pt(6, 0))
	require.Len(t, path, 2)

	c := path[1]
	assert.Equal(t, CurveTo, c.Op)
	assert.InDelta(t, 2, c.C1.X, 1e-12)
	assert.InDelta(t, 2, c.C1.Y, 1e-12)
	assert.InDelta(t, 4, c.C2.X, 1e-12)
	assert.InDelta(t, 2, c.C2.Y, 1e-12)
	assert.Equal(t, Pt(6, 0), c.Pos)
}

func TestPathCurrent(t *testing.T) {
	var path Path
	assert.Equal(t, Point{}, path.Current())
	path.Move(Pt(1, 1))
	path.Line(Pt(3, 4))
	path.Close()
	assert.Equal(t, Pt(3, 4), path.Current())
}

func TestPathVG(t *testing.T) {
	var path Path
	path.Move(Pt(0, 0))
	path.Line(Pt(10, 0))
	path.CubeTo(Pt(12, 0), Pt(14, 2), Pt(14, 4))
	path.Close()

	p := path.VG()
	require.Len(t, p, 4)
	assert.Equal(t, vg.MoveComp, p[0].Type)
	assert.Equal(t, vg.LineComp, p[1].Type)
	assert.Equal(t, vg.Point{X: 10, Y: 0}, p[1].Pos)
	assert.Equal(t, vg.CurveComp, p[2].Type)
	assert.Equal(t, []vg.Point{{X: 12, Y: 0}, {X: 14, Y: 2}}, p[2].Control)
	assert.Equal(t, vg.CloseComp, p[3].Type)
}

func TestPathJSON(t *testing.T) {
	var path Path
	path.Move(Pt(1, 2))
	buf, err := json.Marshal(path)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"op":"M","c1":{"x":0,"y":0},"c2":{"x":0,"y":0},"pos":{"x":1,"y":2}}]`,
		string(buf))
}
