package chart

import (
	"fmt"
	"log"
	"strings"
)

// Frame is the pixel area a layout has to fill. Margin is kept free on
// all four sides.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// Inner returns the drawable area of f. Degenerate frames yield an
// empty rectangle rather than a negative one.
func (f Frame) Inner() Rect {
	m := f.Margin
	if m < 0 {
		m = 0
	}
	r := Rect{Min: Pt(m, m), Max: Pt(f.Width-m, f.Height-m)}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Warner collects the non-fatal diagnostics of one computation. If
// Logger is set every warning is logged as well.
type Warner struct {
	Logger *log.Logger

	warnings []string
}

// Warnf records a warning.
func (w *Warner) Warnf(f string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(f, args...), "\n")
	w.warnings = append(w.warnings, msg)
	if w.Logger != nil {
		w.Logger.Printf("Warning %s", msg)
	}
}

// Warnings returns all recorded warnings in order.
func (w *Warner) Warnings() []string {
	return w.warnings
}
