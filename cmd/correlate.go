package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablescope-cli/internal/eda"
)

var corrThreshold float64

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Compute the Pearson correlation matrix over numeric columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}
		threshold := defaultOptions().CorrThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = corrThreshold
		}
		rep, err := newReporter()
		if err != nil {
			return err
		}
		res, err := a.Correlation(threshold)
		if errors.Is(err, eda.ErrInsufficientNumeric) {
			rep.Skip("correlation: " + err.Error())
			return nil
		}
		if err != nil {
			return err
		}
		return rep.Correlation(res)
	},
}

func init() {
	rootCmd.AddCommand(correlateCmd)
	correlateCmd.Flags().Float64Var(&corrThreshold, "threshold", eda.DefaultOptions().CorrThreshold, "|r| threshold for reporting correlated pairs")
}
