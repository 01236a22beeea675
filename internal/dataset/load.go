package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LoadCSV reads a CSV or TSV file into a Dataset. When delimiter is 0 it is
// sniffed from the file extension (.tsv gets a tab, everything else a comma).
func LoadCSV(path string, delimiter rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if delimiter == 0 {
		delimiter = sniffDelimiter(path)
	}
	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), df.Err)
	}
	return New(df)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
