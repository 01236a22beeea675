package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablescope-cli/internal/eda"
)

var (
	anaThreshold  float64
	anaNeighbors  int
	anaComponents int
	anaClusters   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis suite over a dataset",
	Long:  `Runs basic statistics, correlation, mutual information (when a target is set), PCA, clustering and categorical breakdowns, in that order. Steps whose preconditions are not met are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}
		opt := defaultOptions()
		if cmd.Flags().Changed("threshold") {
			opt.CorrThreshold = anaThreshold
		}
		if cmd.Flags().Changed("neighbors") {
			opt.Neighbors = anaNeighbors
		}
		if cmd.Flags().Changed("components") {
			opt.Components = anaComponents
		}
		if cmd.Flags().Changed("clusters") {
			opt.Clusters = anaClusters
		}

		res, err := a.Comprehensive(opt)
		if err != nil {
			return err
		}
		rep, err := newReporter()
		if err != nil {
			return err
		}

		rep.BasicStats(res.Stats)

		if res.Correlation != nil {
			if err := rep.Correlation(res.Correlation); err != nil {
				return err
			}
		} else if note := res.SkipNote("correlation"); note != "" {
			rep.Skip(note)
		}

		if a.Target() != "" {
			if res.MutualInfo != nil {
				if err := rep.MutualInfo(res.MutualInfo); err != nil {
					return err
				}
			} else if note := res.SkipNote("mutual information"); note != "" {
				rep.Skip(note)
			}
		}

		if res.PCA != nil {
			if err := rep.PCA(res.PCA, classLabels(a)); err != nil {
				return err
			}
		} else if note := res.SkipNote("pca"); note != "" {
			rep.Skip(note)
		}

		if res.Cluster != nil {
			if err := rep.Cluster(res.Cluster); err != nil {
				return err
			}
		} else if note := res.SkipNote("clustering"); note != "" {
			rep.Skip(note)
		}

		if res.Categorical != nil {
			if err := rep.Categorical(res.Categorical, a.Target()); err != nil {
				return err
			}
		} else if note := res.SkipNote("categorical"); note != "" {
			rep.Skip(note)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	defaults := eda.DefaultOptions()
	analyzeCmd.Flags().Float64Var(&anaThreshold, "threshold", defaults.CorrThreshold, "|r| threshold for reporting correlated pairs")
	analyzeCmd.Flags().IntVar(&anaNeighbors, "neighbors", defaults.Neighbors, "neighbour count for the mutual-information estimator")
	analyzeCmd.Flags().IntVar(&anaComponents, "components", defaults.Components, "number of principal components")
	analyzeCmd.Flags().IntVar(&anaClusters, "clusters", defaults.Clusters, "number of k-means clusters")
}
