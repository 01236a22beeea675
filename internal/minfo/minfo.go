// Package minfo estimates mutual information between a continuous feature
// and a target using k-nearest-neighbour estimators: the
// Kraskov-Stögbauer-Grassberger estimator for continuous targets and the
// Ross estimator for discrete ones. Both are non-parametric and return
// values in nats, clamped at zero.
package minfo

import (
	"math"
	"sort"
)

// Regression estimates I(X;Y) for two continuous variables observed jointly.
// Pairs with a NaN on either side are dropped. k is the neighbour count of
// the estimator; it is reduced when fewer observations are available.
func Regression(x, y []float64, k int) float64 {
	xs, ys := dropNaNPairs(x, y)
	n := len(xs)
	if n < 2 || k < 1 {
		return 0
	}
	if k > n-1 {
		k = n - 1
	}

	var sum float64
	dist := make([]float64, 0, n-1)
	for i := 0; i < n; i++ {
		// Chebyshev distance to the k-th nearest neighbour in the joint space.
		dist = dist[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := math.Abs(xs[j] - xs[i])
			dy := math.Abs(ys[j] - ys[i])
			dist = append(dist, math.Max(dx, dy))
		}
		sort.Float64s(dist)
		eps := dist[k-1]

		var nx, ny int
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if math.Abs(xs[j]-xs[i]) < eps {
				nx++
			}
			if math.Abs(ys[j]-ys[i]) < eps {
				ny++
			}
		}
		sum += digamma(float64(nx+1)) + digamma(float64(ny+1))
	}
	mi := digamma(float64(k)) + digamma(float64(n)) - sum/float64(n)
	return math.Max(mi, 0)
}

// Classification estimates I(X;Y) between a continuous variable and a
// discrete label. Observations whose label occurs only once carry no
// neighbour information and are dropped before estimation.
func Classification(x []float64, labels []string, k int) float64 {
	if len(x) != len(labels) || k < 1 {
		return 0
	}
	counts := make(map[string]int)
	for i, v := range x {
		if !math.IsNaN(v) {
			counts[labels[i]]++
		}
	}
	var xs []float64
	var ls []string
	for i, v := range x {
		if math.IsNaN(v) || counts[labels[i]] < 2 {
			continue
		}
		xs = append(xs, v)
		ls = append(ls, labels[i])
	}
	n := len(xs)
	if n < 2 {
		return 0
	}
	// Recount over the retained observations.
	counts = make(map[string]int)
	for _, l := range ls {
		counts[l]++
	}

	var psiLabel, psiK, psiM float64
	var same []float64
	for i := 0; i < n; i++ {
		nc := counts[ls[i]]
		ki := k
		if ki > nc-1 {
			ki = nc - 1
		}
		// Radius: distance to the ki-th nearest same-label neighbour.
		same = same[:0]
		for j := 0; j < n; j++ {
			if j == i || ls[j] != ls[i] {
				continue
			}
			same = append(same, math.Abs(xs[j]-xs[i]))
		}
		sort.Float64s(same)
		radius := same[ki-1]

		// Neighbour count within that radius over the full sample.
		var m int
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if math.Abs(xs[j]-xs[i]) <= radius {
				m++
			}
		}
		psiLabel += digamma(float64(nc))
		psiK += digamma(float64(ki))
		psiM += digamma(float64(m))
	}
	fn := float64(n)
	mi := digamma(fn) - psiLabel/fn + psiK/fn - psiM/fn
	return math.Max(mi, 0)
}

func dropNaNPairs(x, y []float64) ([]float64, []float64) {
	if len(x) != len(y) {
		return nil, nil
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// digamma evaluates ψ(x) for x > 0 by shifting the argument above 6 and
// applying the asymptotic series.
func digamma(x float64) float64 {
	var r float64
	for x < 6 {
		r -= 1 / x
		x++
	}
	f := 1 / (x * x)
	return r + math.Log(x) - 0.5/x - f*(1.0/12-f*(1.0/120-f/252))
}
