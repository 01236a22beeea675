package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablescope-cli/internal/eda"
)

var categoricalCmd = &cobra.Command{
	Use:   "categorical",
	Short: "Break down categorical columns, optionally against the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}
		rep, err := newReporter()
		if err != nil {
			return err
		}
		res, err := a.Categorical()
		if errors.Is(err, eda.ErrNoCategorical) {
			rep.Skip("categorical: " + err.Error())
			return nil
		}
		if err != nil {
			return err
		}
		return rep.Categorical(res, a.Target())
	},
}

func init() {
	rootCmd.AddCommand(categoricalCmd)
}
