package geom

import (
	"math"
	"strconv"

	chart "github.com/vdobler/surveychart"
)

// DefaultSwarmIterations is the number of relaxation sweeps of a Swarm
// with zero Iterations.
const DefaultSwarmIterations = 100

// swarmReach is the distance, in radii, below which two points repel.
const swarmReach = 2.2

// Swarm lays out a one dimensional scatter (bee swarm): every point
// keeps its position on the value axis and is displaced perpendicular
// to it until it no longer overlaps its neighbours.
//
// The relaxation runs a fixed number of sweeps over all pairs of points
// and costs O(n²·Iterations). It is meant for hundreds of points, not
// for millions.
//
// Bound should leave room for the densest cluster. A tight cluster in a
// small Bound may still overlap after Iterations sweeps; raise
// Iterations or Bound for those.
type Swarm struct {
	// Radius is the radius of a point in pixels.
	Radius float64

	// Bound is the total perpendicular extent available, offsets
	// are clamped to [-Bound/2, Bound/2].
	Bound float64

	// Iterations is the number of relaxation sweeps; zero selects
	// DefaultSwarmIterations.
	Iterations int
}

// SwarmItem is a point to place. Pos is its position on the value axis
// in pixels.
type SwarmItem struct {
	ID  string  `json:"id"`
	Pos float64 `json:"pos"`
}

// SwarmPoint is a placed point. Offset is its displacement perpendicular
// to the value axis.
type SwarmPoint struct {
	ID     string  `json:"id"`
	Pos    float64 `json:"pos"`
	Offset float64 `json:"offset"`
}

// Layout places items. The result has the order of items and depends
// only on its input.
func (s Swarm) Layout(items []SwarmItem) []SwarmPoint {
	points := make([]SwarmPoint, len(items))
	for i, it := range items {
		points[i] = SwarmPoint{ID: it.ID, Pos: it.Pos}
	}
	if s.Radius <= 0 || s.Bound <= 0 {
		return points
	}

	iterations := s.Iterations
	if iterations <= 0 {
		iterations = DefaultSwarmIterations
	}
	reach := swarmReach * s.Radius
	half := s.Bound / 2

	for it := 0; it < iterations; it++ {
		for i := range points {
			for j := i + 1; j < len(points); j++ {
				repel(&points[i], &points[j], reach)
			}
		}
		for i := range points {
			points[i].Offset = chart.Clamp(points[i].Offset, -half, half)
		}
	}
	return points
}

// repel pushes p and q apart perpendicular to the value axis until their
// distance reaches reach, each taking half of the correction. Of two
// points at the same offset p moves down and q up.
func repel(p, q *SwarmPoint, reach float64) {
	dx := q.Pos - p.Pos
	dy := q.Offset - p.Offset
	if dx*dx+dy*dy >= reach*reach {
		return
	}
	need := math.Sqrt(reach*reach - dx*dx)
	shift := (need - math.Abs(dy)) / 2
	if dy < 0 {
		shift = -shift
	}
	p.Offset -= shift
	q.Offset += shift
}

// SwarmPoints places one point per LabeledPoint with the value mapped
// through sc; IDs are the indices into points.
func (s Swarm) SwarmPoints(points []chart.LabeledPoint, sc *chart.Scale) []SwarmPoint {
	items := make([]SwarmItem, len(points))
	for i, p := range points {
		items[i] = SwarmItem{ID: strconv.Itoa(i), Pos: sc.Pos(p.Value)}
	}
	return s.Layout(items)
}
