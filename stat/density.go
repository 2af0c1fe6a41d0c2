package stat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	chart "github.com/vdobler/surveychart"
)

// DefaultDensityPoints is the number of points a zero Density samples
// the estimate at.
const DefaultDensityPoints = 100

// Density constructs a probability density estimate of a sample using
// a Gaussian kernel.
//
// The estimate is sampled at Points equally spaced positions across the
// range of the sample widened by 10% on each side.
type Density struct {
	// Points is the number of points to sample the KDE at. Values
	// <= 0 select DefaultDensityPoints.
	Points int

	// Bandwidth is the kernel bandwidth. If zero, Silverman's rule
	// is used.
	Bandwidth float64
}

// Silverman returns the bandwidth 1.06 * σ * n^(-1/5) for a sample
// summarized by s. A sample without spread uses σ = 1.
func Silverman(s Summary) float64 {
	if s.N == 0 {
		return 0
	}
	sigma := s.StdDev
	if sigma == 0 {
		sigma = 1
	}
	return 1.06 * sigma * math.Pow(float64(s.N), -0.2)
}

// Support returns the interval a density of the sample summarized by
// s is sampled on: [Min - 0.1*range, Max + 0.1*range], where a zero
// range counts as 1.
func Support(s Summary) (lo, hi float64) {
	r := s.Range()
	if r == 0 {
		r = 1
	}
	return s.Min - 0.1*r, s.Max + 0.1*r
}

// Apply estimates the density of s. An empty sample yields a nil curve.
func (d Density) Apply(s chart.Sample) []chart.Point {
	if len(s) == 0 {
		return nil
	}
	sum := Describe(s)
	lo, hi := Support(sum)
	return d.sample(s, sum, lo, hi)
}

func (d Density) sample(s chart.Sample, sum Summary, lo, hi float64) []chart.Point {
	n := d.Points
	if n <= 0 {
		n = DefaultDensityPoints
	}
	h := d.Bandwidth
	if h <= 0 {
		h = Silverman(sum)
	}

	xs := make([]float64, len(s))
	copy(xs, s)
	kde := stats.KDE{
		Sample:    stats.Sample{Xs: xs},
		Kernel:    stats.GaussianKernel,
		Bandwidth: h,
	}

	grid := vec.Linspace(lo, hi, n)
	curve := make([]chart.Point, n)
	for i, x := range grid {
		curve[i] = chart.Pt(x, kde.PDF(x))
	}
	return curve
}

// LabeledCurve is the density of the values of one label and group.
type LabeledCurve struct {
	Label string        `json:"label"`
	Group string        `json:"group"`
	N     int           `json:"n"`
	Curve []chart.Point `json:"curve"`
}

// ApplyPoints estimates one density per distinct (label, group) pair of
// points, as needed for violin plots. All curves are sampled on the
// same support, derived from the range of all points, so they can be
// compared directly; the bandwidth is chosen per curve.
func (d Density) ApplyPoints(points []chart.LabeledPoint) []LabeledCurve {
	if len(points) == 0 {
		return nil
	}
	all := make(chart.Sample, len(points))
	for i, p := range points {
		all[i] = p.Value
	}
	lo, hi := Support(Describe(all))

	samples := chart.SamplesByLabel(points)
	curves := make([]LabeledCurve, len(samples))
	for i, ls := range samples {
		curves[i] = LabeledCurve{
			Label: ls.Label,
			Group: ls.Group,
			N:     len(ls.Values),
			Curve: d.sample(ls.Values, Describe(ls.Values), lo, hi),
		}
	}
	return curves
}
