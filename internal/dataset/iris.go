package dataset

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

//go:embed testdata/iris.csv
var irisCSV string

// Iris returns the bundled 150-row iris benchmark table: four numeric
// measurements plus a species label. Useful as demo input and as a known
// fixture for the analyses.
func Iris() (*Dataset, error) {
	df := dataframe.ReadCSV(strings.NewReader(irisCSV),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("embedded iris table: %w", df.Err)
	}
	return New(df)
}
