// Package geom turns data and statistics into pixel geometry: bee
// swarm offsets, flow (Sankey) diagrams, box plots, bars, pie slices
// and smooth curves through point sequences.
//
// Layouts never draw; they return Points, Rects, Segments and Paths of
// package chart. Structurally invalid input to Flow.Layout is reported
// as an error wrapping one of the Err* values of this package.
package geom
