package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablescope-cli/internal/eda"
)

var miNeighbors int

var mutualInfoCmd = &cobra.Command{
	Use:     "mutualinfo",
	Aliases: []string{"mi"},
	Short:   "Score numeric features by mutual information with the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}
		neighbors := defaultOptions().Neighbors
		if cmd.Flags().Changed("neighbors") {
			neighbors = miNeighbors
		}
		rep, err := newReporter()
		if err != nil {
			return err
		}
		res, err := a.MutualInfo(neighbors)
		if errors.Is(err, eda.ErrNoTarget) {
			rep.Skip("mutual information: " + err.Error())
			return nil
		}
		if err != nil {
			return err
		}
		return rep.MutualInfo(res)
	},
}

func init() {
	rootCmd.AddCommand(mutualInfoCmd)
	mutualInfoCmd.Flags().IntVar(&miNeighbors, "neighbors", eda.DefaultOptions().Neighbors, "neighbour count for the estimator")
}
