// Package eda implements the exploratory analyses offered by tablescope:
// descriptive statistics, correlation, mutual information, PCA, clustering
// and categorical breakdowns over a dataset.Dataset.
package eda

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/tablescope-cli/internal/dataset"
	"gonum.org/v1/gonum/mat"
)

// ProblemKind classifies the analysis mode implied by the target column.
type ProblemKind int

const (
	// ProblemNone means no target column was set.
	ProblemNone ProblemKind = iota
	// ProblemRegression means the target is numeric.
	ProblemRegression
	// ProblemClassification means the target is categorical.
	ProblemClassification
)

func (k ProblemKind) String() string {
	switch k {
	case ProblemRegression:
		return "regression"
	case ProblemClassification:
		return "classification"
	default:
		return "none"
	}
}

// Sentinel errors for guarded skip conditions. Callers treat these as
// "report and move on", not as failures.
var (
	ErrInsufficientNumeric = errors.New("need at least 2 numeric features")
	ErrNoTarget            = errors.New("no target column set")
	ErrNoCategorical       = errors.New("no categorical features")
)

// Analyzer runs the analyses over one dataset/target pair. It is stateless
// between calls; every field is fixed at construction.
type Analyzer struct {
	ds     *dataset.Dataset
	target string
	kind   ProblemKind
}

// New builds an Analyzer. A non-empty target must name an existing column;
// the problem kind is derived from which partition the target falls in.
func New(ds *dataset.Dataset, target string) (*Analyzer, error) {
	a := &Analyzer{ds: ds, target: target}
	switch {
	case target == "":
		a.kind = ProblemNone
	case !ds.HasColumn(target):
		return nil, fmt.Errorf("target column %q not in table", target)
	case ds.IsNumeric(target):
		a.kind = ProblemRegression
	default:
		a.kind = ProblemClassification
	}
	return a, nil
}

// Dataset returns the analyzed dataset.
func (a *Analyzer) Dataset() *dataset.Dataset { return a.ds }

// Target returns the target column name, or "" when none is set.
func (a *Analyzer) Target() string { return a.target }

// Kind returns the derived problem kind.
func (a *Analyzer) Kind() ProblemKind { return a.kind }

// features returns the numeric columns with the target excluded. Used by
// the mutual-information analysis; the other analyses operate on the full
// numeric partition, target included.
func (a *Analyzer) features() []string {
	var out []string
	for _, c := range a.ds.Numeric() {
		if c != a.target {
			out = append(out, c)
		}
	}
	return out
}

// matrixOf builds a dense matrix from the named numeric columns, one row
// per observation.
func (a *Analyzer) matrixOf(cols []string) *mat.Dense {
	n := a.ds.Nrow()
	m := mat.NewDense(n, len(cols), nil)
	for j, c := range cols {
		for i, v := range a.ds.Floats(c) {
			m.Set(i, j, v)
		}
	}
	return m
}

// Options carries the tunable parameters of a comprehensive run.
type Options struct {
	CorrThreshold float64
	Neighbors     int
	Components    int
	Clusters      int
}

// DefaultOptions returns the standard parameters for a comprehensive run.
func DefaultOptions() Options {
	return Options{CorrThreshold: 0.7, Neighbors: 5, Components: 2, Clusters: 3}
}

// Results aggregates the outcome of a comprehensive run. Analyses skipped
// by a guard condition are nil, with an explanation appended to Skipped.
type Results struct {
	Stats       *BasicStats
	Correlation *Correlation
	MutualInfo  *MutualInfo
	PCA         *PCA
	Cluster     *Cluster
	Categorical *Categorical
	Skipped     []string
}

// Comprehensive runs every analysis in a fixed order: basic statistics,
// correlation, mutual information (only when a target is set), PCA,
// clustering, categorical breakdowns. Guard conditions are recorded in
// Skipped rather than aborting the run; any other error is fatal.
func (a *Analyzer) Comprehensive(opt Options) (*Results, error) {
	res := &Results{Stats: a.BasicStats()}

	corr, err := a.Correlation(opt.CorrThreshold)
	if err := res.record(err, "correlation"); err != nil {
		return nil, err
	}
	res.Correlation = corr

	if a.target != "" {
		mi, err := a.MutualInfo(opt.Neighbors)
		if err := res.record(err, "mutual information"); err != nil {
			return nil, err
		}
		res.MutualInfo = mi
	}

	pca, err := a.PCA(opt.Components)
	if err := res.record(err, "pca"); err != nil {
		return nil, err
	}
	res.PCA = pca

	cl, err := a.Cluster(opt.Clusters)
	if err := res.record(err, "clustering"); err != nil {
		return nil, err
	}
	res.Cluster = cl

	cat, err := a.Categorical()
	if err := res.record(err, "categorical"); err != nil {
		return nil, err
	}
	res.Categorical = cat

	return res, nil
}

// record files guard-condition errors under Skipped and passes everything
// else through.
func (r *Results) record(err error, step string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInsufficientNumeric),
		errors.Is(err, ErrNoTarget),
		errors.Is(err, ErrNoCategorical):
		r.Skipped = append(r.Skipped, fmt.Sprintf("%s: %v", step, err))
		return nil
	default:
		return fmt.Errorf("%s: %w", step, err)
	}
}

// SkipNote returns the skip explanation recorded for a step, or "".
func (r *Results) SkipNote(step string) string {
	for _, s := range r.Skipped {
		if len(s) >= len(step) && s[:len(step)] == step {
			return s
		}
	}
	return ""
}
