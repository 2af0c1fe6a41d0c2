package geom

import (
	chart "github.com/vdobler/surveychart"
	"github.com/vdobler/surveychart/stat"
)

// -------------------------------------------------------------------------
// Geom Boxplot

// BoxLayout turns box plot statistics into pixel geometry: one band of
// X per label, the value axis on Y.
type BoxLayout struct {
	X chart.Band
	Y *chart.Scale

	// Position Dodge places the boxes of different groups sharing a
	// label side by side; any other position draws them on top of each
	// other.
	Position Position

	Theme chart.Theme
}

// BoxGrob is the geometry of one box: the Q1 to Q3 rectangle, the two
// whiskers from the box to Min and Max, the median line across the box
// and one point per outlier.
type BoxGrob struct {
	Label    string          `json:"label"`
	Group    string          `json:"group"`
	Rect     chart.Rect      `json:"rect"`
	Whiskers []chart.Segment `json:"whiskers"`
	Median   chart.Segment   `json:"median"`
	Outliers []chart.Point   `json:"outliers"`
	Fill     string          `json:"fill"`
}

// Layout places boxes, usually the result of stat.BoxPlot.ApplyPoints.
// Empty boxes and boxes whose label is unknown to X are dropped. A nil
// Y is trained on all boxes and spans [0, 1].
func (bl BoxLayout) Layout(boxes []stat.Box) []BoxGrob {
	y := bl.Y
	if y == nil {
		y = chart.NewScale(0, 1)
		for _, b := range boxes {
			if !b.Empty() {
				y.Train(b.Min, b.Max)
				y.Train(b.Outliers...)
			}
		}
		y.Prepare(0)
	}

	var groups chart.StringSet
	barsAt := make(map[string]float64)
	for _, b := range boxes {
		groups.Add(groupName(b.Group))
		if !b.Empty() {
			barsAt[b.Label]++
		}
	}
	drawnAt := make(map[string]float64)

	var grobs []BoxGrob
	for _, b := range boxes {
		if b.Empty() {
			continue
		}
		xc, ok := bl.X.Center(b.Label)
		if !ok {
			continue
		}
		wh := bl.X.Width() / 2
		if bl.Position == Dodge {
			total := barsAt[b.Label]
			drawn := drawnAt[b.Label]
			drawnAt[b.Label]++
			wh /= total
			xc += (2*drawn - (total - 1)) * wh
		}

		y1, y3 := y.Pos(b.Q1), y.Pos(b.Q3)
		rect := chart.Rect{Min: chart.Pt(xc-wh, y1), Max: chart.Pt(xc+wh, y3)}
		if y1 > y3 {
			rect.Min.Y, rect.Max.Y = y3, y1
		}
		ym := y.Pos(b.Median)

		g := BoxGrob{
			Label: b.Label,
			Group: groupName(b.Group),
			Rect:  rect,
			Whiskers: []chart.Segment{
				{P0: chart.Pt(xc, y.Pos(b.Min)), P1: chart.Pt(xc, y1)},
				{P0: chart.Pt(xc, y3), P1: chart.Pt(xc, y.Pos(b.Max))},
			},
			Median: chart.Segment{P0: chart.Pt(xc-wh, ym), P1: chart.Pt(xc+wh, ym)},
			Fill:   chart.Hex(bl.Theme.SeriesColor(groups.Index(groupName(b.Group)))),
		}
		for _, o := range b.Outliers {
			g.Outliers = append(g.Outliers, chart.Pt(xc, y.Pos(o)))
		}
		grobs = append(grobs, g)
	}
	return grobs
}

func groupName(g string) string {
	if g == "" {
		return chart.DefaultGroup
	}
	return g
}
