package eda

import (
	"fmt"
	"sort"

	"github.com/KaramelBytes/tablescope-cli/internal/minfo"
)

// FeatureScore is one feature's mutual-information score against the target.
type FeatureScore struct {
	Feature string
	Score   float64
}

// MutualInfo holds per-feature mutual-information scores, sorted descending.
type MutualInfo struct {
	Kind      ProblemKind
	Neighbors int
	Scores    []FeatureScore
}

// MutualInfo estimates mutual information between every numeric feature and
// the target. The target column is excluded from the feature set, and so
// are categorical features. The regression estimator is used for a numeric
// target, the classification estimator otherwise.
func (a *Analyzer) MutualInfo(neighbors int) (*MutualInfo, error) {
	if a.target == "" {
		return nil, ErrNoTarget
	}
	if neighbors < 1 {
		return nil, fmt.Errorf("neighbors must be >= 1, got %d", neighbors)
	}
	res := &MutualInfo{Kind: a.kind, Neighbors: neighbors}

	var (
		targetVals   []float64
		targetLabels []string
	)
	if a.kind == ProblemRegression {
		targetVals = a.ds.Floats(a.target)
	} else {
		targetLabels = a.ds.Records(a.target)
	}
	for _, feat := range a.features() {
		x := a.ds.Floats(feat)
		var score float64
		if a.kind == ProblemRegression {
			score = minfo.Regression(x, targetVals, neighbors)
		} else {
			score = minfo.Classification(x, targetLabels, neighbors)
		}
		res.Scores = append(res.Scores, FeatureScore{Feature: feat, Score: score})
	}
	sort.SliceStable(res.Scores, func(i, j int) bool {
		return res.Scores[i].Score > res.Scores[j].Score
	})
	return res, nil
}
