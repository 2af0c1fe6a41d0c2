// Package chart is the data model of a chart layout and statistics
// engine for survey analytics.
//
// The engine turns tabulated response data into numbers and geometric
// primitives; painting them is left to the caller.
//
//
// Packages
//
// This package holds what all parts share:
//     Sample, LabeledPoint    the input records
//     Point, Rect, Path       the output primitives (pixel space)
//     Scale, Band, NiceTicks  mapping data to pixels and axis ticks
//     Palette, Theme          colors for series and points
// Package stat computes summaries, correlations, histograms, box plots
// and kernel density estimates. Package geom lays out bee swarms, flow
// (Sankey) diagrams, box plots, bars and pies, and interpolates curves
// through point sequences.
//
//
// Computation Model
//
// Every function is a pure computation over its arguments: inputs are
// never modified, nothing is cached and nothing is shared, so results
// may be memoized on the inputs alone and independent charts may be
// computed concurrently.
//
// Degenerate statistical input (empty samples, zero ranges, zero
// variance) never panics or errors; it yields well defined neutral
// results which are checkable as such, e.g. a Summary with N == 0 or an
// empty Path.
//
//
// Paths
//
// Curves are Paths of M (move), L (line) and C (cubic Bézier) commands.
// Path.String renders the SVG path syntax
//     M x,y L x,y C c1x,c1y c2x,c2y x,y
// and Path.VG converts to a gonum.org/v1/plot/vg.Path.
package chart
