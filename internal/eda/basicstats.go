package eda

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// NumericSummary holds the descriptive statistics of one numeric column.
type NumericSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// CategoricalSummary holds the descriptive statistics of one categorical
// column: distinct value count plus the most frequent value and its count.
type CategoricalSummary struct {
	Column string
	Count  int
	Unique int
	Top    string
	Freq   int
}

// BasicStats is the per-partition descriptive summary of the table.
type BasicStats struct {
	Numeric     []NumericSummary
	Categorical []CategoricalSummary
}

// BasicStats summarizes every column of each non-empty partition. NaN
// entries are excluded from the numeric counts.
func (a *Analyzer) BasicStats() *BasicStats {
	out := &BasicStats{}
	for _, col := range a.ds.Numeric() {
		var xs []float64
		for _, v := range a.ds.Floats(col) {
			if !math.IsNaN(v) {
				xs = append(xs, v)
			}
		}
		s := NumericSummary{Column: col, Count: len(xs)}
		if len(xs) > 0 {
			sample := stats.Sample{Xs: xs}
			s.Mean = sample.Mean()
			s.Std = sample.StdDev()
			s.Min, s.Max = sample.Bounds()
			s.Q1 = sample.Quantile(0.25)
			s.Median = sample.Quantile(0.5)
			s.Q3 = sample.Quantile(0.75)
		}
		out.Numeric = append(out.Numeric, s)
	}
	for _, col := range a.ds.Categorical() {
		counts := make(map[string]int)
		total := 0
		for _, v := range a.ds.Records(col) {
			if v == "" {
				continue
			}
			counts[v]++
			total++
		}
		s := CategoricalSummary{Column: col, Count: total, Unique: len(counts)}
		// Deterministic top pick: highest count, ties by value.
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if counts[k] > s.Freq {
				s.Top = k
				s.Freq = counts[k]
			}
		}
		out.Categorical = append(out.Categorical, s)
	}
	return out
}
