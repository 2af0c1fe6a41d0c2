package stat

import (
	"math"
	"sort"

	gstat "gonum.org/v1/gonum/stat"

	chart "github.com/vdobler/surveychart"
)

// Summary describes a sample.
//
// The quartiles use a nearest-rank rule without interpolation:
// Q1 = sorted[floor(n/4)] and Q3 = sorted[floor(3n/4)]. This differs
// from the default quantile definition of most statistics packages and
// is kept for compatibility with existing chart output.
type Summary struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	StdDev float64 `json:"stdDev"` // population standard deviation
}

// Empty reports whether the summary was computed from no data.
func (s Summary) Empty() bool { return s.N == 0 }

// Range is Max - Min.
func (s Summary) Range() float64 { return s.Max - s.Min }

// IQR is the interquartile range Q3 - Q1.
func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }

// Describe computes the Summary of s. An empty sample yields the zero
// Summary.
func Describe(s chart.Sample) Summary {
	if len(s) == 0 {
		return Summary{}
	}
	return describeSorted(sortedCopy(s))
}

func sortedCopy(s chart.Sample) []float64 {
	d := make([]float64, len(s))
	copy(d, s)
	sort.Float64s(d)
	return d
}

// describeSorted summarizes the non-empty, ascending d.
func describeSorted(d []float64) Summary {
	n := len(d)
	sum := Summary{N: n, Min: d[0], Max: d[n-1]}
	if n%2 == 1 {
		sum.Median = d[(n-1)/2]
	} else {
		sum.Median = (d[n/2] + d[n/2-1]) / 2
	}
	sum.Q1, sum.Q3 = d[n/4], d[3*n/4]

	mean, std := gstat.MeanStdDev(d, nil)
	sum.Mean = mean
	if n > 1 {
		// MeanStdDev is the unbiased estimate; rescale to the
		// population value.
		sum.StdDev = std * math.Sqrt(float64(n-1)/float64(n))
	}
	return sum
}
