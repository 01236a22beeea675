package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print descriptive statistics for every column",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}
		rep, err := newReporter()
		if err != nil {
			return err
		}
		rep.BasicStats(a.BasicStats())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
