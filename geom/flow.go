package geom

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	chart "github.com/vdobler/surveychart"
)

// Errors returned for malformed flow graphs.
var (
	ErrInvalidNode   = errors.New("invalid node")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownNode   = errors.New("unknown node")
	ErrSelfLink      = errors.New("self link")
	ErrInvalidValue  = errors.New("invalid link value")
)

// Defaults of a zero Flow.
const (
	DefaultNodeWidth   = 15
	DefaultNodePadding = 10
)

// Flow lays out a Sankey diagram: nodes are stacked in columns (stages)
// from left to right and links are bands whose width is proportional to
// the flow they carry.
type Flow struct {
	Frame chart.Frame

	// NodeWidth is the horizontal extent of a node; zero selects
	// DefaultNodeWidth.
	NodeWidth float64

	// NodePadding is the vertical gap between two nodes of a column;
	// zero selects DefaultNodePadding, negative values no gap.
	NodePadding float64

	// Logger, if set, receives the warnings of Layout.
	Logger *log.Logger
}

// FlowNodeSpec is an input node. A nil Column lets Layout infer the
// column from the links of the node.
type FlowNodeSpec struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Column *int   `json:"column,omitempty"`
}

// FlowLinkSpec is an input link carrying Value from Source to Target.
type FlowLinkSpec struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// FlowNode is a placed node; (X, Y) is its top left corner.
type FlowNode struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Column int     `json:"column"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Value is max(In, Out), the flow the height represents.
	Value float64 `json:"value"`
	In    float64 `json:"in"`
	Out   float64 `json:"out"`
}

// FlowLink is a placed link.
//
// SourceOffset and TargetOffset are the distances of the top of the
// band from the top of the source and target node. Width is the band
// width at the source, TargetWidth at the target; they differ if the
// two columns are scaled differently.
type FlowLink struct {
	Source       string  `json:"source"`
	Target       string  `json:"target"`
	Value        float64 `json:"value"`
	SourceOffset float64 `json:"sourceOffset"`
	TargetOffset float64 `json:"targetOffset"`
	Width        float64 `json:"width"`
	TargetWidth  float64 `json:"targetWidth"`

	// (X0, Y0) and (X1, Y1) are the centres of the band where it
	// leaves the source and enters the target.
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`

	// Path is the centre line of the band, an S-curve with both
	// control points at the horizontal midpoint.
	Path chart.Path `json:"path"`
}

// Ribbon returns the closed outline of the band of l.
func (l FlowLink) Ribbon() chart.Path {
	xm := (l.X0 + l.X1) / 2
	top0, top1 := l.Y0-l.Width/2, l.Y1-l.TargetWidth/2
	bot0, bot1 := l.Y0+l.Width/2, l.Y1+l.TargetWidth/2

	var p chart.Path
	p.Move(chart.Pt(l.X0, top0))
	p.CubeTo(chart.Pt(xm, top0), chart.Pt(xm, top1), chart.Pt(l.X1, top1))
	p.Line(chart.Pt(l.X1, bot1))
	p.CubeTo(chart.Pt(xm, bot1), chart.Pt(xm, bot0), chart.Pt(l.X0, bot0))
	p.Close()
	return p
}

// FlowLayout is the result of Flow.Layout. Nodes and Links keep the
// order of the input.
type FlowLayout struct {
	Columns  int        `json:"columns"`
	Nodes    []FlowNode `json:"nodes"`
	Links    []FlowLink `json:"links"`
	Warnings []string   `json:"warnings,omitempty"`
}

// Node returns the node with the given id.
func (fl FlowLayout) Node(id string) (FlowNode, bool) {
	for _, n := range fl.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return FlowNode{}, false
}

// Layout places nodes and links inside f.Frame.
//
// Nodes without a column are assigned one from their links: nodes which
// only emit flow go to column 0, nodes which only receive flow to the
// last column and nodes which do both to column 1. Nodes without links
// go to column 0 with zero height. This is only right for graphs of at
// most three stages; deeper graphs need explicit columns and produce a
// warning.
//
// Within a column node heights are proportional to their Value and,
// together with the padding, fill the frame height. The bands leaving a
// node are stacked in the vertical order of their targets, the bands
// entering it in the order of their sources.
func (f Flow) Layout(nodes []FlowNodeSpec, links []FlowLinkSpec) (FlowLayout, error) {
	w := chart.Warner{Logger: f.Logger}

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return FlowLayout{}, fmt.Errorf("geom: node %d: empty id: %w", i, ErrInvalidNode)
		}
		if n.Column != nil && *n.Column < 0 {
			return FlowLayout{}, fmt.Errorf("geom: node %q: negative column %d: %w", n.ID, *n.Column, ErrInvalidNode)
		}
		if _, dup := index[n.ID]; dup {
			return FlowLayout{}, fmt.Errorf("geom: node %q: %w", n.ID, ErrDuplicateNode)
		}
		index[n.ID] = i
	}

	out := FlowLayout{
		Nodes: make([]FlowNode, len(nodes)),
		Links: make([]FlowLink, len(links)),
	}
	hasIn := make([]bool, len(nodes))
	hasOut := make([]bool, len(nodes))
	src := make([]int, len(links))
	tgt := make([]int, len(links))
	for i, l := range links {
		s, ok := index[l.Source]
		if !ok {
			return FlowLayout{}, fmt.Errorf("geom: link %d: source %q: %w", i, l.Source, ErrUnknownNode)
		}
		t, ok := index[l.Target]
		if !ok {
			return FlowLayout{}, fmt.Errorf("geom: link %d: target %q: %w", i, l.Target, ErrUnknownNode)
		}
		if s == t {
			return FlowLayout{}, fmt.Errorf("geom: link %d: %q: %w", i, l.Source, ErrSelfLink)
		}
		if l.Value < 0 || math.IsNaN(l.Value) || math.IsInf(l.Value, 0) {
			return FlowLayout{}, fmt.Errorf("geom: link %d: value %g: %w", i, l.Value, ErrInvalidValue)
		}
		src[i], tgt[i] = s, t
		hasOut[s], hasIn[t] = true, true
		out.Nodes[s].Out += l.Value
		out.Nodes[t].In += l.Value
		out.Links[i] = FlowLink{Source: l.Source, Target: l.Target, Value: l.Value}
	}

	inferred := f.assignColumns(nodes, hasIn, hasOut, &out)
	for i, l := range links {
		s, t := src[i], tgt[i]
		if inferred[s] && inferred[t] && out.Nodes[s].Column >= out.Nodes[t].Column {
			w.Warnf("link %s -> %s does not advance a column; graphs with more than three stages need explicit columns",
				l.Source, l.Target)
		}
	}

	f.placeNodes(&out)
	placeLinks(&out, src, tgt)
	out.Warnings = w.Warnings()
	return out, nil
}

// assignColumns fills ID, Label, Column and Value of out.Nodes and
// out.Columns. It reports which columns were inferred.
func (f Flow) assignColumns(nodes []FlowNodeSpec, hasIn, hasOut []bool, out *FlowLayout) []bool {
	inferred := make([]bool, len(nodes))
	last, maxExplicit, middle := 1, -1, false
	for i, n := range nodes {
		if n.Column != nil {
			if *n.Column > maxExplicit {
				maxExplicit = *n.Column
			}
			continue
		}
		inferred[i] = true
		if hasIn[i] && hasOut[i] {
			middle = true
		}
	}
	if middle {
		last = 2
	}
	if maxExplicit > last {
		last = maxExplicit
	}

	for i, n := range nodes {
		node := &out.Nodes[i]
		node.ID, node.Label = n.ID, n.Label
		if node.Label == "" {
			node.Label = n.ID
		}
		node.Value = math.Max(node.In, node.Out)
		switch {
		case n.Column != nil:
			node.Column = *n.Column
		case hasIn[i] && hasOut[i]:
			node.Column = 1
		case hasIn[i]:
			node.Column = last
		default:
			node.Column = 0
		}
		if node.Column+1 > out.Columns {
			out.Columns = node.Column + 1
		}
	}
	return inferred
}

// placeNodes computes the geometry of all nodes column by column.
func (f Flow) placeNodes(out *FlowLayout) {
	inner := f.Frame.Inner()
	nodeWidth := f.NodeWidth
	if nodeWidth <= 0 {
		nodeWidth = DefaultNodeWidth
	}
	if nodeWidth > inner.Width() {
		nodeWidth = inner.Width()
	}
	padding := f.NodePadding
	if padding == 0 {
		padding = DefaultNodePadding
	} else if padding < 0 {
		padding = 0
	}

	columns := make([][]int, out.Columns)
	for i, n := range out.Nodes {
		columns[n.Column] = append(columns[n.Column], i)
	}

	dx := 0.0
	if out.Columns > 1 {
		dx = (inner.Width() - nodeWidth) / float64(out.Columns-1)
	}
	for c, members := range columns {
		total := 0.0
		for _, i := range members {
			total += out.Nodes[i].Value
		}
		avail := inner.Height() - padding*float64(len(members)-1)
		ky := 0.0
		if total > 0 && avail > 0 {
			ky = avail / total
		}

		y := inner.Min.Y
		for _, i := range members {
			n := &out.Nodes[i]
			n.X = inner.Min.X + float64(c)*dx
			n.Y = y
			n.Width = nodeWidth
			n.Height = n.Value * ky
			y += n.Height + padding
		}
	}
}

// placeLinks stacks the bands of every node and computes their paths.
func placeLinks(out *FlowLayout, src, tgt []int) {
	outgoing := make([][]int, len(out.Nodes))
	incoming := make([][]int, len(out.Nodes))
	for i := range out.Links {
		outgoing[src[i]] = append(outgoing[src[i]], i)
		incoming[tgt[i]] = append(incoming[tgt[i]], i)
	}

	share := func(value float64, n FlowNode) float64 {
		if n.Value == 0 {
			return 0
		}
		return value / n.Value * n.Height
	}

	for ni, node := range out.Nodes {
		ls := outgoing[ni]
		sort.SliceStable(ls, func(a, b int) bool {
			return out.Nodes[tgt[ls[a]]].Y < out.Nodes[tgt[ls[b]]].Y
		})
		offset := 0.0
		for _, li := range ls {
			l := &out.Links[li]
			l.SourceOffset = offset
			l.Width = share(l.Value, node)
			offset += l.Width
		}

		ls = incoming[ni]
		sort.SliceStable(ls, func(a, b int) bool {
			return out.Nodes[src[ls[a]]].Y < out.Nodes[src[ls[b]]].Y
		})
		offset = 0
		for _, li := range ls {
			l := &out.Links[li]
			l.TargetOffset = offset
			l.TargetWidth = share(l.Value, node)
			offset += l.TargetWidth
		}
	}

	for i := range out.Links {
		l := &out.Links[i]
		s, t := out.Nodes[src[i]], out.Nodes[tgt[i]]
		l.X0 = s.X + s.Width
		l.Y0 = s.Y + l.SourceOffset + l.Width/2
		l.X1 = t.X
		l.Y1 = t.Y + l.TargetOffset + l.TargetWidth/2

		xm := (l.X0 + l.X1) / 2
		l.Path = nil
		l.Path.Move(chart.Pt(l.X0, l.Y0))
		l.Path.CubeTo(chart.Pt(xm, l.Y0), chart.Pt(xm, l.Y1), chart.Pt(l.X1, l.Y1))
	}
}
