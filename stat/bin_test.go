package stat

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chart "github.com/vdobler/surveychart"
)

func TestBin(t *testing.T) {
	h := Bin{Count: 4}.Apply(chart.Sample{0, 1, 2, 3, 4, 5, 6, 7, 8})
	require.Len(t, h.Bins, 4)
	assert.Equal(t, 2.0, h.Width)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, h.Edges())

	counts := make([]int, 4)
	for i, b := range h.Bins {
		counts[i] = b.Count
	}
	// The maximum 8 falls into the last bin, not a fifth one.
	assert.Equal(t, []int{2, 2, 2, 3}, counts)
	assert.Equal(t, 1.0, h.Bins[3].NCount)
	assert.InDelta(t, 3.0/2/9, h.Bins[3].Density, 1e-15)
	assert.Equal(t, 7.0, h.Bins[3].X)
}

func TestBinConservation(t *testing.T) {
	samples := []chart.Sample{
		{1},
		{5, 5, 5},
		{-3, 0.1, 0.2, 17, 17, 4.5},
		seq(-50, 50),
	}
	for _, s := range samples {
		for count := 1; count <= 12; count++ {
			h := Bin{Count: count}.Apply(s)
			require.Len(t, h.Bins, count)
			total := 0
			for _, b := range h.Bins {
				total += b.Count
			}
			assert.Equal(t, len(s), total, "sample %v, %d bins", s, count)
			assert.Equal(t, len(s), h.N)
		}
	}
}

func TestBinDensityIntegratesToOne(t *testing.T) {
	h := Bin{Count: 7}.Apply(chart.Sample{1, 2, 2, 3, 5, 8, 13, 21})
	area := 0.0
	for _, b := range h.Bins {
		area += b.Density * (b.Hi - b.Lo)
	}
	assert.InDelta(t, 1, area, 1e-12)
}

func TestBinDegenerate(t *testing.T) {
	assert.Empty(t, Bin{}.Apply(nil).Bins)
	assert.Empty(t, Bin{}.Apply(chart.Sample{math.NaN()}).Bins)

	h := Bin{}.Apply(chart.Sample{2, 2})
	require.Len(t, h.Bins, DefaultBinCount)
	assert.Equal(t, 2, h.Bins[0].Count)
	assert.Equal(t, 2.0, h.Min)
	assert.Equal(t, 3.0, h.Max)

	h = Bin{Count: 2}.Apply(chart.Sample{1, math.Inf(1), 3, math.NaN(), math.Inf(-1)})
	assert.Equal(t, 2, h.N)
	assert.Equal(t, []float64{1, 2, 3}, h.Edges())

	huge := Bin{Count: 4}.Apply(chart.Sample{-math.MaxFloat64, 0, math.MaxFloat64})
	require.Len(t, huge.Bins, 4)
	assert.Equal(t, 3, huge.N)
	assert.Equal(t, math.MaxFloat64/2, huge.Width)
	counts := make([]int, len(huge.Bins))
	for i, b := range huge.Bins {
		counts[i] = b.Count
		assert.False(t, math.IsInf(b.X, 0) || math.IsNaN(b.X), "bin %d center %g", i, b.X)
	}
	assert.Equal(t, []int{1, 0, 1, 1}, counts)
	edges := huge.Edges()
	assert.Equal(t, -math.MaxFloat64, edges[0])
	assert.Equal(t, math.MaxFloat64, edges[4])
	assert.InEpsilon(t, -math.MaxFloat64/2, edges[1], 1e-12)
	assert.InEpsilon(t, math.MaxFloat64/2, edges[3], 1e-12)
	assert.True(t, sort.Float64sAreSorted(edges))
}
