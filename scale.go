package chart

import (
	"math"
)

// DefaultTickCount is the number of ticks a Scale aims for when
// Prepare is called with a non-positive target.
const DefaultTickCount = 6

// Scale maps a continuous data domain linearly onto a pixel range.
//
// A Scale is set up in two steps: Train it on all values which must be
// visible, then Prepare it, which computes the axis breaks and, if
// ExpandToTic is set, widens the domain to the outermost ticks.
type Scale struct {
	ExpandToTic bool

	DomainMin float64
	DomainMax float64

	// RangeMin and RangeMax are the pixel positions DomainMin and
	// DomainMax map to. RangeMin may be larger than RangeMax, e.g.
	// for a y axis growing upwards in a top-down pixel space.
	RangeMin float64
	RangeMax float64

	// Breaks are set up by Prepare.
	Breaks []float64
}

// NewScale returns an untrained scale onto [rangeMin, rangeMax].
func NewScale(rangeMin, rangeMax float64) *Scale {
	return &Scale{
		ExpandToTic: true,
		DomainMin:   math.Inf(+1),
		DomainMax:   math.Inf(-1),
		RangeMin:    rangeMin,
		RangeMax:    rangeMax,
	}
}

// Train widens the domain of s to include all finite xs.
func (s *Scale) Train(xs ...float64) {
	for _, x := range xs {
		if !finite(x) {
			continue
		}
		if x < s.DomainMin {
			s.DomainMin = x
		}
		if x > s.DomainMax {
			s.DomainMax = x
		}
	}
}

// Trained reports whether s has seen at least one value.
func (s *Scale) Trained() bool {
	return s.DomainMin <= s.DomainMax
}

// Prepare computes the breaks of s aiming at target ticks. An untrained
// scale gets the domain [0, 1].
func (s *Scale) Prepare(target int) {
	if target <= 0 {
		target = DefaultTickCount
	}
	if !s.Trained() {
		s.DomainMin, s.DomainMax = 0, 1
	}
	ticks := NiceTicks(s.DomainMin, s.DomainMax, target)
	if s.ExpandToTic {
		s.DomainMin, s.DomainMax = ticks[0], ticks[len(ticks)-1]
		s.Breaks = ticks
		return
	}
	s.Breaks = s.Breaks[:0]
	for _, t := range ticks {
		if t >= s.DomainMin && t <= s.DomainMax {
			s.Breaks = append(s.Breaks, t)
		}
	}
}

// Pos maps x from the domain to the range. A scale with an empty domain
// maps everything to the middle of its range.
func (s *Scale) Pos(x float64) float64 {
	span := s.DomainMax - s.DomainMin
	if !(span > 0) {
		return (s.RangeMin + s.RangeMax) / 2
	}
	return s.RangeMin + (x-s.DomainMin)/span*(s.RangeMax-s.RangeMin)
}

// -------------------------------------------------------------------------
// Band Scale

// Band maps discrete labels onto equally wide bands of a pixel range.
type Band struct {
	Labels []string

	RangeMin, RangeMax float64

	// Padding is the fraction of each step left empty between
	// neighbouring bands, in [0, 1).
	Padding float64
}

// Step is the distance between the starts of two neighbouring bands.
func (b Band) Step() float64 {
	if len(b.Labels) == 0 {
		return 0
	}
	return (b.RangeMax - b.RangeMin) / float64(len(b.Labels))
}

// Width is the width of a single band.
func (b Band) Width() float64 {
	return b.Step() * (1 - Clamp(b.Padding, 0, 1))
}

// Pos returns the start of the band of label. The second result is
// false for unknown labels.
func (b Band) Pos(label string) (float64, bool) {
	for i, l := range b.Labels {
		if l == label {
			step := b.Step()
			return b.RangeMin + float64(i)*step + (step-b.Width())/2, true
		}
	}
	return 0, false
}

// Center returns the middle of the band of label.
func (b Band) Center(label string) (float64, bool) {
	x, ok := b.Pos(label)
	return x + b.Width()/2, ok
}
