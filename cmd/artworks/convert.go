package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/artworks/internal/convert"
	"github.com/pdiddy/artworks/pkg/types"
)

const keyConvertOut = "convert.out"

func init() {
	rootCmd.Flags().StringP("out", "o", types.DefaultOutPath, "output JSON path")

	viper.SetDefault(keyConvertOut, types.DefaultOutPath)
}

// convertConfig resolves the output path: an explicit --out wins, then the
// convert.out config key (or ARTWORKS_CONVERT_OUT), then the default.
func convertConfig(cmd *cobra.Command) (types.ConvertConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return types.ConvertConfig{}, err
	}
	cc := cfg.Convert
	if cmd.Flags().Changed("out") || cc.Out == "" {
		cc.Out, _ = cmd.Flags().GetString("out")
	}
	return cc, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	n, err := convert.Convert(args[0], cfg.Out)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), convert.Summary(cfg.Out, n))
	return nil
}
