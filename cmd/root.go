package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/tablescope-cli/internal/config"
	"github.com/KaramelBytes/tablescope-cli/internal/dataset"
	"github.com/KaramelBytes/tablescope-cli/internal/eda"
	"github.com/KaramelBytes/tablescope-cli/internal/report"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile string

	// Dataset selection flags shared by all analysis commands
	flagFile      string
	flagTarget    string
	flagDelimiter string
	flagDemo      bool

	// Plot output flags
	flagPlotsDir string
	flagNoPlots  bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tablescope",
	Short: "Tablescope CLI: exploratory analysis for tabular datasets",
	Long:  `Tablescope is a CLI tool that profiles a tabular dataset: descriptive statistics, correlations, mutual information against a target, PCA, clustering and categorical breakdowns, with console tables and PNG charts.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tablescope/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "CSV/TSV dataset to analyze")
	rootCmd.PersistentFlags().StringVarP(&flagTarget, "target", "t", "", "target column for supervised analyses")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (sniffed by extension if omitted)")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "use the bundled iris dataset (target defaults to species)")
	rootCmd.PersistentFlags().StringVar(&flagPlotsDir, "plots-dir", "", "directory for rendered charts (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoPlots, "no-plots", false, "disable chart output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// buildAnalyzer loads the dataset selected by the shared flags and wraps it
// in an Analyzer.
func buildAnalyzer() (*eda.Analyzer, error) {
	var (
		ds     *dataset.Dataset
		target = flagTarget
		err    error
	)
	switch {
	case flagDemo:
		ds, err = dataset.Iris()
		if target == "" {
			target = "species"
		}
	case flagFile != "":
		delimStr := flagDelimiter
		if delimStr == "" && cfg != nil {
			delimStr = cfg.Delimiter
		}
		delim, derr := parseDelimiter(delimStr)
		if derr != nil {
			return nil, derr
		}
		ds, err = dataset.LoadCSV(flagFile, delim)
	default:
		return nil, fmt.Errorf("specify a dataset with --file or --demo")
	}
	if err != nil {
		return nil, err
	}
	return eda.New(ds, target)
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// newReporter builds a Reporter honoring the plot flags and config.
func newReporter() (*report.Reporter, error) {
	dir := ""
	if !flagNoPlots {
		dir = flagPlotsDir
		if dir == "" && cfg != nil {
			dir = cfg.PlotsDir
		}
		if dir == "" {
			dir = "plots"
		}
	}
	return report.New(os.Stdout, dir)
}

// defaultOptions merges the config file into the analysis defaults.
func defaultOptions() eda.Options {
	opt := eda.DefaultOptions()
	if cfg == nil {
		return opt
	}
	if cfg.CorrThreshold > 0 {
		opt.CorrThreshold = cfg.CorrThreshold
	}
	if cfg.MINeighbors > 0 {
		opt.Neighbors = cfg.MINeighbors
	}
	if cfg.PCAComponents > 0 {
		opt.Components = cfg.PCAComponents
	}
	if cfg.Clusters > 0 {
		opt.Clusters = cfg.Clusters
	}
	return opt
}

// classLabels returns the target records when the analyzer is in
// classification mode; scatter plots are uncolored otherwise.
func classLabels(a *eda.Analyzer) []string {
	if a.Kind() != eda.ProblemClassification {
		return nil
	}
	return a.Dataset().Records(a.Target())
}
