package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablescope-cli/internal/eda"
)

var pcaComponents int

var pcaCmd = &cobra.Command{
	Use:   "pca",
	Short: "Project standardized numeric columns onto principal components",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}
		components := defaultOptions().Components
		if cmd.Flags().Changed("components") {
			components = pcaComponents
		}
		rep, err := newReporter()
		if err != nil {
			return err
		}
		res, err := a.PCA(components)
		if errors.Is(err, eda.ErrInsufficientNumeric) {
			rep.Skip("pca: " + err.Error())
			return nil
		}
		if err != nil {
			return err
		}
		return rep.PCA(res, classLabels(a))
	},
}

func init() {
	rootCmd.AddCommand(pcaCmd)
	pcaCmd.Flags().IntVar(&pcaComponents, "components", eda.DefaultOptions().Components, "number of principal components")
}
