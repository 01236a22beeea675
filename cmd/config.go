package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/tablescope-cli/internal/config"
	"github.com/KaramelBytes/tablescope-cli/internal/utils"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Tablescope configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		if configJSON {
			b, err := utils.PrettyJSON(cfg)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		fmt.Printf("plots_dir: %s\n", cfg.PlotsDir)
		if cfg.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		}
		fmt.Printf("corr_threshold: %.3f\n", cfg.CorrThreshold)
		fmt.Printf("mi_neighbors: %d\n", cfg.MINeighbors)
		fmt.Printf("pca_components: %d\n", cfg.PCAComponents)
		fmt.Printf("clusters: %d\n", cfg.Clusters)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "plots_dir":
			cfg.PlotsDir = val
		case "delimiter":
			switch val {
			case "", ",", ";", "tab":
				cfg.Delimiter = val
			default:
				return fmt.Errorf("invalid delimiter: %s (use ',', ';' or 'tab')", val)
			}
		case "corr_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid float for corr_threshold: %v", val)
			}
			cfg.CorrThreshold = f
		case "mi_neighbors":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for mi_neighbors: %v", val)
			}
			cfg.MINeighbors = i
		case "pca_components":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for pca_components: %v", val)
			}
			cfg.PCAComponents = i
		case "clusters":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for clusters: %v", val)
			}
			cfg.Clusters = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "print config as JSON")
}
