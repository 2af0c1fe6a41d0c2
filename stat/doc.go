// Package stat computes the statistical transforms behind survey charts:
// descriptive summaries, Pearson correlations, histograms, box plots and
// Gaussian kernel density estimates.
//
// All transforms are configured by small option structs whose zero
// values are useful, and all of them accept empty samples: the result
// is then an empty value (N == 0, nil bins, nil curve) and never an
// error.
package stat
