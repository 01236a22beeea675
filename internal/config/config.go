package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/tablescope-cli/internal/utils"
)

// Global configuration structure.
type Global struct {
	// Where rendered charts are written.
	PlotsDir string `mapstructure:"plots_dir" yaml:"plots_dir" json:"plots_dir"`
	// CSV delimiter: "," | ";" | "tab". Empty means sniff by extension.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" json:"delimiter"`

	// Analysis defaults, overridable per command via flags.
	CorrThreshold float64 `mapstructure:"corr_threshold" yaml:"corr_threshold" json:"corr_threshold"`
	MINeighbors   int     `mapstructure:"mi_neighbors" yaml:"mi_neighbors" json:"mi_neighbors"`
	PCAComponents int     `mapstructure:"pca_components" yaml:"pca_components" json:"pca_components"`
	Clusters      int     `mapstructure:"clusters" yaml:"clusters" json:"clusters"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tablescope/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablescope")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TABLESCOPE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("plots_dir", "plots")
	v.SetDefault("delimiter", "")
	v.SetDefault("corr_threshold", 0.7)
	v.SetDefault("mi_neighbors", 5)
	v.SetDefault("pca_components", 2)
	v.SetDefault("clusters", 3)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablescope")
		_ = utils.EnsureDir(dir)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
