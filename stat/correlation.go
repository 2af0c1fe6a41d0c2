package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	gstat "gonum.org/v1/gonum/stat"

	chart "github.com/vdobler/surveychart"
)

// Pearson returns the correlation coefficient of the first
// min(len(x), len(y)) elements of x and y. It is 0 if fewer than two
// pairs are available or if either x or y has zero variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < 2 {
		return 0
	}
	x, y = x[:n], y[:n]
	if constant(x) || constant(y) {
		return 0
	}
	r := gstat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return chart.Clamp(r, -1, 1)
}

func constant(xs []float64) bool {
	return floats.Min(xs) == floats.Max(xs)
}

// Variable is a named numeric column, e.g. the answers to one survey
// question.
type Variable struct {
	Name   string       `json:"name"`
	Values chart.Sample `json:"values"`
}

// Correlations is a symmetric matrix of pairwise Pearson coefficients.
type Correlations struct {
	Names  []string      `json:"names"`
	Matrix *mat.SymDense `json:"-"`
}

// CorrelationMatrix correlates every unordered pair of vars, each
// variable with itself included.
func CorrelationMatrix(vars []Variable) Correlations {
	c := Correlations{Names: make([]string, len(vars))}
	if len(vars) == 0 {
		return c
	}
	c.Matrix = mat.NewSymDense(len(vars), nil)
	for i := range vars {
		c.Names[i] = vars[i].Name
		for j := i; j < len(vars); j++ {
			c.Matrix.SetSym(i, j, Pearson(vars[i].Values, vars[j].Values))
		}
	}
	return c
}

// Len is the number of variables.
func (c Correlations) Len() int { return len(c.Names) }

// At returns the coefficient of variables i and j.
func (c Correlations) At(i, j int) float64 { return c.Matrix.At(i, j) }

// Pair is one entry of a correlation matrix.
type Pair struct {
	A string  `json:"a"`
	B string  `json:"b"`
	R float64 `json:"r"`
}

// Pairs lists all unordered pairs (i <= j) in row-major order.
func (c Correlations) Pairs() []Pair {
	var pairs []Pair
	for i := range c.Names {
		for j := i; j < len(c.Names); j++ {
			pairs = append(pairs, Pair{A: c.Names[i], B: c.Names[j], R: c.At(i, j)})
		}
	}
	return pairs
}
