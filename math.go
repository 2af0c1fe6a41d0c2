package chart

import "math"

// RoundDown rounds a down to a multiple of step.
func RoundDown(a, step float64) float64 {
	return math.Floor(a/step) * step
}

// RoundUp rounds a up to a multiple of step.
func RoundUp(a, step float64) float64 {
	return math.Ceil(a/step) * step
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NiceStep returns a step of the form {1,2,5,10}·10^k close to
// span/(target-1).
func NiceStep(span float64, target int) float64 {
	if target < 2 {
		target = 2
	}
	if span <= 0 {
		span = 1
	}
	rough := span / float64(target-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	residual := rough / magnitude
	switch {
	case residual <= 1.5:
		return magnitude
	case residual <= 3:
		return 2 * magnitude
	case residual <= 7:
		return 5 * magnitude
	}
	return 10 * magnitude
}

// NiceTicks returns roughly target equidistant axis ticks covering
// [min, max]. The first tick is <= min, the last is >= max and the step
// is one of 1, 2, 5 or 10 times a power of ten.
//
// A zero range is widened to [min, min+1]. NaN or infinite bounds yield
// no ticks.
func NiceTicks(min, max float64, target int) []float64 {
	if !finite(min) || !finite(max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		max = min + 1
	}
	step := NiceStep(max-min, target)
	lo, hi := RoundDown(min, step), RoundUp(max, step)

	var ticks []float64
	for k := 0; ; k++ {
		t := lo + float64(k)*step
		if t > hi+step/2 {
			break
		}
		ticks = append(ticks, t)
	}
	return ticks
}
