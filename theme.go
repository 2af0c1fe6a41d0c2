package chart

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

// DefaultPalette is the palette name a zero Theme uses.
const DefaultPalette = "default"

var defaultColors = []string{
	"#4f46e5", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6",
	"#06b6d4", "#ec4899", "#84cc16", "#f97316", "#6366f1",
}

// Palette returns the colors of the named palette in order.
//
// Besides DefaultPalette every ColorBrewer scheme known to
// gonum.org/v1/plot/palette/brewer ("Set1", "Dark2", "Blues", ...) is
// available in its largest variant. Unknown names yield the default
// palette and false.
func Palette(name string) ([]color.Color, bool) {
	if name != "" && name != DefaultPalette {
		if p, ok := brewerPalette(name); ok {
			return p.Colors(), true
		}
	}
	cols := make([]color.Color, len(defaultColors))
	for i, s := range defaultColors {
		cols[i], _ = ParseColor(s)
	}
	return cols, name == "" || name == DefaultPalette
}

func brewerPalette(name string) (palette.Palette, bool) {
	// ColorBrewer schemes come in 3 to 9 or 12 classes.
	for n := 12; n >= 3; n-- {
		p, err := brewer.GetPalette(brewer.TypeAny, name, n)
		if err == nil {
			return p, true
		}
	}
	return nil, false
}

// Color returns cols[i mod len(cols)], nil for an empty palette.
func Color(i int, cols []color.Color) color.Color {
	n := len(cols)
	if n == 0 {
		return nil
	}
	i %= n
	if i < 0 {
		i += n
	}
	return cols[i]
}

// Theme selects the colors of series and points.
type Theme struct {
	Palette string
}

// Colors returns the palette of t.
func (t Theme) Colors() []color.Color {
	cols, _ := Palette(t.Palette)
	return cols
}

// SeriesColor returns the color of the i'th series.
func (t Theme) SeriesColor(i int) color.Color {
	return Color(i, t.Colors())
}

// PointColor returns the explicit color of p if it has a parsable one
// and the color of series i otherwise.
func (t Theme) PointColor(p LabeledPoint, i int) color.Color {
	if c, ok := ParseColor(p.Color); ok {
		return c
	}
	return t.SeriesColor(i)
}
