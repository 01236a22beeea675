package eda

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrPair is one unordered pair of numeric columns and their Pearson
// correlation.
type CorrPair struct {
	A, B string
	R    float64
}

// Correlation holds the Pearson matrix over the numeric columns and the
// pairs whose absolute correlation exceeds the threshold, listed in
// column-index order (i<j).
type Correlation struct {
	Columns   []string
	Matrix    *mat.SymDense
	Threshold float64
	Strong    []CorrPair
}

// Correlation computes pairwise Pearson correlation over all numeric
// columns. Requires at least two numeric columns.
func (a *Analyzer) Correlation(threshold float64) (*Correlation, error) {
	cols := a.ds.Numeric()
	if len(cols) < 2 {
		return nil, ErrInsufficientNumeric
	}
	x := a.matrixOf(cols)
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)

	res := &Correlation{Columns: cols, Matrix: &corr, Threshold: threshold}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			if r := corr.At(i, j); math.Abs(r) > threshold {
				res.Strong = append(res.Strong, CorrPair{A: cols[i], B: cols[j], R: r})
			}
		}
	}
	return res, nil
}
