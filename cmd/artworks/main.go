// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the artworks CLI, which converts the
// artworks CSV export into the JSON file the site loads.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/artworks/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a CSV file to JSON; subcommands add previews.
var rootCmd = &cobra.Command{
	Use:   "artworks <csv_path>",
	Short: "Convert artworks CSV to artworks.json for the site",
	Long: `artworks reads a CSV export of artwork records, trims whitespace from
every field, and writes the records as a JSON array the site loads
(data/artworks.json by default). Field order in each object follows the
CSV header.

Use the series subcommand to preview how the site groups the records.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./artworks.yaml or ~/.config/artworks/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("artworks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "artworks"))
		}
	}

	viper.SetEnvPrefix("ARTWORKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes defaults, the config file, and ARTWORKS_* variables
// into types.Config. Comma-separated strings decode into lists.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
