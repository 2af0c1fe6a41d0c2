package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

var responses = []LabeledPoint{
	{Label: "Q1", Value: 4, Group: "women"},
	{Label: "Q1", Value: 3},
	{Label: "Q2", Value: 5, Group: "women"},
	{Label: "Q1", Value: 2, Group: "women"},
	{Label: "Q3", Value: 1, Group: "men"},
}

func TestSampleFrom(t *testing.T) {
	s := SampleFrom(plotter.Values{3, 1, 2})
	assert.Equal(t, Sample{3, 1, 2}, s)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1.0, s.Value(1))
	assert.Nil(t, SampleFrom(nil))

	// A Sample is a Valuer itself.
	v, err := plotter.CopyValues(s)
	require.NoError(t, err)
	assert.Equal(t, plotter.Values{3, 1, 2}, v)
}

func TestMinMax(t *testing.T) {
	min, max, mini, maxi := MinMax(Sample{3, math.NaN(), -1, 7, 7})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)
	assert.Equal(t, 2, mini)
	assert.Equal(t, 3, maxi)

	_, _, mini, maxi = MinMax(Sample{math.NaN()})
	assert.Equal(t, -1, mini)
	assert.Equal(t, -1, maxi)
	_, _, mini, _ = MinMax(nil)
	assert.Equal(t, -1, mini)
}

func TestGroupPoints(t *testing.T) {
	groups := GroupPoints(responses)
	require.Len(t, groups, 3)
	assert.Equal(t, "women", groups[0].Name)
	assert.Equal(t, DefaultGroup, groups[1].Name)
	assert.Equal(t, "men", groups[2].Name)
	assert.Equal(t, Sample{4, 5, 2}, groups[0].Values())

	assert.Equal(t, []string{"women", DefaultGroup, "men"}, GroupNames(responses))
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, Labels(responses))
	assert.Empty(t, GroupPoints(nil))
	assert.Empty(t, Labels(nil))
}

func TestSamplesByLabel(t *testing.T) {
	samples := SamplesByLabel(responses)
	require.Len(t, samples, 4)
	assert.Equal(t, LabeledSample{Label: "Q1", Group: "women", Values: Sample{4, 2}}, samples[0])
	assert.Equal(t, LabeledSample{Label: "Q1", Group: DefaultGroup, Values: Sample{3}}, samples[1])
	assert.Equal(t, "Q2", samples[2].Label)
	assert.Equal(t, "men", samples[3].Group)
}
