package eda

import (
	"fmt"
	"math"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/mpraski/clusters"
	"gonum.org/v1/gonum/mat"
)

const kmeansIterations = 1000

// Cluster holds a k-means partition of the standardized numeric columns:
// per-row labels, per-cluster sizes and raw-feature means, plus a 2-D t-SNE
// embedding computed purely for visualization.
type Cluster struct {
	K         int
	Columns   []string
	Labels    []int
	Sizes     []int
	Means     [][]float64
	Embedding *mat.Dense
}

// Cluster standardizes the numeric columns, partitions the rows into k
// groups with k-means, and computes an independent 2-D embedding of the
// same standardized matrix for plotting. The embedding plays no role in the
// cluster assignment. The dataset itself is never mutated; its column set
// is identical before and after the call.
func (a *Analyzer) Cluster(k int) (*Cluster, error) {
	cols := a.ds.Numeric()
	if len(cols) < 2 {
		return nil, ErrInsufficientNumeric
	}
	if k < 1 {
		return nil, fmt.Errorf("clusters must be >= 1, got %d", k)
	}
	raw := a.ds.Matrix(cols)
	if len(raw) < k {
		return nil, fmt.Errorf("cannot split %d rows into %d clusters", len(raw), k)
	}
	std := denseRows(standardize(a.matrixOf(cols)))

	km, err := clusters.KMeans(kmeansIterations, k, clusters.EuclideanDistance)
	if err != nil {
		return nil, fmt.Errorf("init k-means: %w", err)
	}
	if err := km.Learn(std); err != nil {
		return nil, fmt.Errorf("fit k-means: %w", err)
	}

	res := &Cluster{K: k, Columns: cols}
	res.Labels = make([]int, len(std))
	for i, g := range km.Guesses() {
		res.Labels[i] = g - 1 // library labels are 1-based
	}

	// Per-cluster sizes and raw-feature means.
	res.Sizes = make([]int, k)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, len(cols))
	}
	for i, label := range res.Labels {
		res.Sizes[label]++
		for j, v := range raw[i] {
			if !math.IsNaN(v) {
				sums[label][j] += v
			}
		}
	}
	res.Means = make([][]float64, k)
	for c := range res.Means {
		res.Means[c] = make([]float64, len(cols))
		for j := range cols {
			if res.Sizes[c] > 0 {
				res.Means[c][j] = sums[c][j] / float64(res.Sizes[c])
			} else {
				res.Means[c][j] = math.NaN()
			}
		}
	}

	res.Embedding = embed2D(std)
	return res, nil
}

// embed2D computes a 2-D t-SNE layout of the standardized rows. Perplexity
// shrinks with small samples to keep the optimization well-posed.
func embed2D(rows [][]float64) *mat.Dense {
	n, d := len(rows), len(rows[0])
	x := mat.NewDense(n, d, nil)
	for i, row := range rows {
		x.SetRow(i, row)
	}
	perplexity := 30.0
	if p := float64(n-1) / 3; p < perplexity {
		perplexity = math.Max(p, 2)
	}
	t := tsne.NewTSNE(2, perplexity, 100, 300, false)
	return mat.DenseCopyOf(t.EmbedData(x, nil))
}

func denseRows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		mat.Row(row, i, m)
		out[i] = row
	}
	return out
}
