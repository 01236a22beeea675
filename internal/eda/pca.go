package eda

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PCA holds a principal-component projection of the standardized numeric
// columns: per-row scores, the feature×component loading matrix and the
// fraction of variance explained by each kept component.
type PCA struct {
	Columns      []string
	Components   int
	Scores       *mat.Dense
	Loadings     *mat.Dense
	ExplainedVar []float64
}

// PCA standardizes all numeric columns and projects them onto the leading
// principal axes. components is clamped to the number of numeric columns;
// fewer than two numeric columns is a guard condition.
func (a *Analyzer) PCA(components int) (*PCA, error) {
	cols := a.ds.Numeric()
	if len(cols) < 2 {
		return nil, ErrInsufficientNumeric
	}
	if components < 1 {
		return nil, fmt.Errorf("components must be >= 1, got %d", components)
	}
	if components > len(cols) {
		components = len(cols)
	}

	x := standardize(a.matrixOf(cols))
	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, fmt.Errorf("principal component decomposition failed")
	}
	var vec mat.Dense
	pc.VectorsTo(&vec)
	vars := pc.VarsTo(nil)
	if components > len(vars) {
		components = len(vars)
	}

	loadings := mat.DenseCopyOf(vec.Slice(0, len(cols), 0, components))
	var scores mat.Dense
	scores.Mul(x, loadings)

	total := floats.Sum(vars)
	ratio := make([]float64, components)
	for i := range ratio {
		if total > 0 {
			ratio[i] = vars[i] / total
		}
	}
	return &PCA{
		Columns:      cols,
		Components:   components,
		Scores:       &scores,
		Loadings:     loadings,
		ExplainedVar: ratio,
	}, nil
}

// standardize rescales each column to zero mean and unit variance. Constant
// or all-NaN columns are flattened to zero.
func standardize(x *mat.Dense) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		mu, sigma := stat.MeanStdDev(col, nil)
		for i := 0; i < r; i++ {
			v := 0.0
			if sigma > 0 && !math.IsNaN(mu) {
				v = (col[i] - mu) / sigma
			}
			if math.IsNaN(v) {
				v = 0
			}
			out.Set(i, j, v)
		}
	}
	return out
}
