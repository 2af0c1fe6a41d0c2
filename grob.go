package chart

import (
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Grobs are the graphical primitives produced by the layouts of this
// module. All coordinates are in pixel space; nothing here knows how to
// draw itself.

// -------------------------------------------------------------------------
// Grob Point

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// VG converts p to a gonum/plot vector graphics point.
func (p Point) VG() vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)}
}

// -------------------------------------------------------------------------
// Grob Line

// Segment is a straight line from P0 to P1.
type Segment struct {
	P0 Point `json:"p0"`
	P1 Point `json:"p1"`
}

// -------------------------------------------------------------------------
// Grob Rect

// Rect is an axis-parallel rectangle.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// -------------------------------------------------------------------------
// Grob Path

// PathOp is the kind of a path command.
type PathOp byte

const (
	MoveTo  PathOp = 'M'
	LineTo  PathOp = 'L'
	CurveTo PathOp = 'C'
	Close   PathOp = 'Z'
)

// MarshalText encodes op as its SVG command letter.
func (op PathOp) MarshalText() ([]byte, error) {
	return []byte{byte(op)}, nil
}

// PathCmd is one drawing command. MoveTo and LineTo use only Pos,
// CurveTo uses C1 and C2 as the control points of a cubic Bézier
// ending in Pos.
type PathCmd struct {
	Op  PathOp `json:"op"`
	C1  Point  `json:"c1"`
	C2  Point  `json:"c2"`
	Pos Point  `json:"pos"`
}

// Path is a sequence of drawing commands in SVG path semantics.
type Path []PathCmd

// Move starts a new subpath at p.
func (path *Path) Move(p Point) {
	*path = append(*path, PathCmd{Op: MoveTo, Pos: p})
}

// Line draws a straight line to p.
func (path *Path) Line(p Point) {
	*path = append(*path, PathCmd{Op: LineTo, Pos: p})
}

// CubeTo draws a cubic Bézier curve to p with control points c1 and c2.
func (path *Path) CubeTo(c1, c2, p Point) {
	*path = append(*path, PathCmd{Op: CurveTo, C1: c1, C2: c2, Pos: p})
}

// QuadTo draws a quadratic Bézier curve to p with control point c. It
// is stored as the equivalent cubic so that paths only ever contain
// M, L, C and Z commands.
func (path *Path) QuadTo(c, p Point) {
	p0 := path.Current()
	c1 := p0.Add(c.Sub(p0).Scale(2.0 / 3))
	c2 := p.Add(c.Sub(p).Scale(2.0 / 3))
	path.CubeTo(c1, c2, p)
}

// Close closes the current subpath.
func (path *Path) Close() {
	*path = append(*path, PathCmd{Op: Close})
}

// Current returns the current pen position, the origin for an empty
// path.
func (path Path) Current() Point {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Op != Close {
			return path[i].Pos
		}
	}
	return Point{}
}

// String renders path in SVG path syntax, e.g.
//   M 0,0 L 10,5 C 12,5 14,8 16,8
// An empty path renders as "".
func (path Path) String() string {
	var b strings.Builder
	for i, cmd := range path {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(cmd.Op))
		switch cmd.Op {
		case MoveTo, LineTo:
			b.WriteByte(' ')
			writePoint(&b, cmd.Pos)
		case CurveTo:
			b.WriteByte(' ')
			writePoint(&b, cmd.C1)
			b.WriteByte(' ')
			writePoint(&b, cmd.C2)
			b.WriteByte(' ')
			writePoint(&b, cmd.Pos)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
}

// VG converts path to a gonum/plot vector graphics path so it can be
// stroked or filled on any vg.Canvas.
func (path Path) VG() vg.Path {
	var p vg.Path
	for _, cmd := range path {
		switch cmd.Op {
		case MoveTo:
			p.Move(cmd.Pos.VG())
		case LineTo:
			p.Line(cmd.Pos.VG())
		case CurveTo:
			p.CubeTo(cmd.C1.VG(), cmd.C2.VG(), cmd.Pos.VG())
		case Close:
			p.Close()
		}
	}
	return p
}
