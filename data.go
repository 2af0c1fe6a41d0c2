package chart

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// DefaultGroup is the group of a LabeledPoint without an explicit group.
const DefaultGroup = "default"

// Sample is an ordered sequence of measurements. A Sample may be empty
// and may contain duplicates. Functions in this module never modify a
// Sample they are handed.
type Sample []float64

// SampleFrom copies the values of v into a new Sample.
func SampleFrom(v plotter.Valuer) Sample {
	if v == nil {
		return nil
	}
	s := make(Sample, v.Len())
	for i := range s {
		s[i] = v.Value(i)
	}
	return s
}

// Len returns the number of values in s.
func (s Sample) Len() int { return len(s) }

// Value returns the i'th value; together with Len it makes a Sample a
// plotter.Valuer.
func (s Sample) Value(i int) float64 { return s[i] }

var _ plotter.Valuer = Sample(nil)

// MinMax returns the minimum and maximum of s and their indices.
// The indices are -1 if s contains no finite value; NaNs are skipped.
func MinMax(s Sample) (min, max float64, mini, maxi int) {
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, x := range s {
		if math.IsNaN(x) {
			continue
		}
		if x < min {
			min, mini = x, i
		}
		if x > max {
			max, maxi = x, i
		}
	}
	return min, max, mini, maxi
}

// LabeledPoint is the datum of categorical charts. Labels need not be
// unique.
type LabeledPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Group string  `json:"group,omitempty"`
	Color string  `json:"color,omitempty"`
}

// GroupName returns the group of p, DefaultGroup if unset.
func (p LabeledPoint) GroupName() string {
	if p.Group == "" {
		return DefaultGroup
	}
	return p.Group
}

// Group is a named subset of labeled points.
type Group struct {
	Name   string
	Points []LabeledPoint
}

// Values returns the values of all points in g.
func (g Group) Values() Sample {
	s := make(Sample, len(g.Points))
	for i, p := range g.Points {
		s[i] = p.Value
	}
	return s
}

// GroupPoints partitions points by their group. Groups are returned in
// the order their first member appears in points.
func GroupPoints(points []LabeledPoint) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, p := range points {
		name := p.GroupName()
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Points = append(groups[i].Points, p)
	}
	return groups
}

// Labels returns the distinct labels of points in first-seen order.
func Labels(points []LabeledPoint) []string {
	var seen StringSet
	for _, p := range points {
		seen.Add(p.Label)
	}
	return seen.Elements()
}

// GroupNames returns the distinct group names of points in first-seen
// order.
func GroupNames(points []LabeledPoint) []string {
	groups := GroupPoints(points)
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

// LabeledSample is the sample of all values sharing a label and group.
type LabeledSample struct {
	Label  string
	Group  string
	Values Sample
}

// SamplesByLabel collects the values of points per (label, group) pair
// in first-seen order.
func SamplesByLabel(points []LabeledPoint) []LabeledSample {
	type key struct{ label, group string }
	index := make(map[key]int)
	var samples []LabeledSample
	for _, p := range points {
		k := key{p.Label, p.GroupName()}
		i, ok := index[k]
		if !ok {
			i = len(samples)
			index[k] = i
			samples = append(samples, LabeledSample{Label: k.label, Group: k.group})
		}
		samples[i].Values = append(samples[i].Values, p.Value)
	}
	return samples
}
