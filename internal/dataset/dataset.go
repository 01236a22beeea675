package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset is a fixed view over a tabular frame: rows are observations,
// columns are features. The numeric/categorical partition is computed once
// at construction and never recomputed afterwards.
type Dataset struct {
	df          dataframe.DataFrame
	numeric     []string
	categorical []string
}

// New copies the frame and partitions its columns by series type: Int and
// Float columns are numeric, everything else (String, Bool) is categorical.
func New(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("load frame: %w", df.Err)
	}
	d := &Dataset{df: df.Copy()}
	types := d.df.Types()
	for i, name := range d.df.Names() {
		switch types[i] {
		case series.Int, series.Float:
			d.numeric = append(d.numeric, name)
		default:
			d.categorical = append(d.categorical, name)
		}
	}
	return d, nil
}

// Frame returns the underlying dataframe.
func (d *Dataset) Frame() dataframe.DataFrame { return d.df }

// Numeric returns the numeric column names in table order.
func (d *Dataset) Numeric() []string { return append([]string(nil), d.numeric...) }

// Categorical returns the categorical column names in table order.
func (d *Dataset) Categorical() []string { return append([]string(nil), d.categorical...) }

// Names returns all column names in table order.
func (d *Dataset) Names() []string { return d.df.Names() }

// Nrow returns the number of observations.
func (d *Dataset) Nrow() int { return d.df.Nrow() }

// Ncol returns the number of columns.
func (d *Dataset) Ncol() int { return d.df.Ncol() }

// HasColumn reports whether the table has a column with the given name.
func (d *Dataset) HasColumn(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether name belongs to the numeric partition.
func (d *Dataset) IsNumeric(name string) bool {
	for _, n := range d.numeric {
		if n == name {
			return true
		}
	}
	return false
}

// Floats returns one column as float64 values. Non-numeric entries come
// back as NaN, matching gota's conversion rules.
func (d *Dataset) Floats(col string) []float64 {
	return d.df.Col(col).Float()
}

// Records returns one column as its string representation.
func (d *Dataset) Records(col string) []string {
	return d.df.Col(col).Records()
}

// Matrix returns the named columns as a row-major matrix, one row per
// observation.
func (d *Dataset) Matrix(cols []string) [][]float64 {
	n := d.df.Nrow()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, len(cols))
	}
	for j, c := range cols {
		vals := d.Floats(c)
		for i, v := range vals {
			out[i][j] = v
		}
	}
	return out
}
