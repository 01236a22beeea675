package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablescope-cli/internal/eda"
)

var clusterK int

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Partition rows with k-means and plot a t-SNE embedding",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}
		k := defaultOptions().Clusters
		if cmd.Flags().Changed("clusters") {
			k = clusterK
		}
		rep, err := newReporter()
		if err != nil {
			return err
		}
		res, err := a.Cluster(k)
		if errors.Is(err, eda.ErrInsufficientNumeric) {
			rep.Skip("clustering: " + err.Error())
			return nil
		}
		if err != nil {
			return err
		}
		return rep.Cluster(res)
	},
}

func init() {
	rootCmd.AddCommand(clusterCmd)
	clusterCmd.Flags().IntVar(&clusterK, "clusters", eda.DefaultOptions().Clusters, "number of k-means clusters")
}
