package eda

import (
	"math"
	"sort"
)

// CategoryFreq is one category value with its count and normalized share.
type CategoryFreq struct {
	Value string
	Count int
	Share float64
}

// CrossTab is a row-normalized contingency table between a categorical
// column and a categorical target: Shares[i][j] is the fraction of rows in
// category i that fall in target class j.
type CrossTab struct {
	Categories []string
	Classes    []string
	Shares     [][]float64
}

// CategoricalColumn is the breakdown of one categorical column. Exactly one
// of TargetByCategory (regression) and CrossTab (classification) is set
// when a target is present; both are nil without one.
type CategoricalColumn struct {
	Column           string
	Freqs            []CategoryFreq
	TargetByCategory map[string][]float64
	CrossTab         *CrossTab
}

// Categorical is the per-column categorical breakdown of the table.
type Categorical struct {
	Columns []CategoricalColumn
}

// Categorical analyzes every categorical column independently: normalized
// value frequencies in descending order, plus the per-category target
// distribution (regression) or a row-normalized cross-tabulation with the
// target (classification).
func (a *Analyzer) Categorical() (*Categorical, error) {
	cats := a.ds.Categorical()
	if len(cats) == 0 {
		return nil, ErrNoCategorical
	}
	res := &Categorical{}
	for _, col := range cats {
		records := a.ds.Records(col)
		cc := CategoricalColumn{Column: col, Freqs: valueFreqs(records)}

		switch a.kind {
		case ProblemRegression:
			target := a.ds.Floats(a.target)
			cc.TargetByCategory = make(map[string][]float64)
			for i, v := range records {
				if v == "" || math.IsNaN(target[i]) {
					continue
				}
				cc.TargetByCategory[v] = append(cc.TargetByCategory[v], target[i])
			}
		case ProblemClassification:
			cc.CrossTab = crossTab(cc.Freqs, records, a.ds.Records(a.target))
		}
		res.Columns = append(res.Columns, cc)
	}
	return res, nil
}

// valueFreqs counts non-empty values and returns them by descending count,
// ties broken by value, with shares normalized over the counted total.
func valueFreqs(records []string) []CategoryFreq {
	counts := make(map[string]int)
	total := 0
	for _, v := range records {
		if v == "" {
			continue
		}
		counts[v]++
		total++
	}
	out := make([]CategoryFreq, 0, len(counts))
	for v, c := range counts {
		out = append(out, CategoryFreq{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	for i := range out {
		out[i].Share = float64(out[i].Count) / float64(total)
	}
	return out
}

// crossTab builds a row-normalized contingency table. Category rows follow
// the descending-frequency order of freqs; target classes are sorted.
func crossTab(freqs []CategoryFreq, records, target []string) *CrossTab {
	classSet := make(map[string]bool)
	for _, t := range target {
		if t != "" {
			classSet[t] = true
		}
	}
	classes := make([]string, 0, len(classSet))
	for c := range classSet {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	classIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	ct := &CrossTab{Classes: classes}
	rowIdx := make(map[string]int, len(freqs))
	for i, f := range freqs {
		ct.Categories = append(ct.Categories, f.Value)
		rowIdx[f.Value] = i
		ct.Shares = append(ct.Shares, make([]float64, len(classes)))
	}
	rowTotals := make([]float64, len(freqs))
	for i, v := range records {
		ri, ok := rowIdx[v]
		if !ok {
			continue
		}
		ci, ok := classIdx[target[i]]
		if !ok {
			continue
		}
		ct.Shares[ri][ci]++
		rowTotals[ri]++
	}
	for i := range ct.Shares {
		if rowTotals[i] == 0 {
			continue
		}
		for j := range ct.Shares[i] {
			ct.Shares[i][j] /= rowTotals[i]
		}
	}
	return ct
}
