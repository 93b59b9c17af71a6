// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/artworks/internal/convert"
	"github.com/pdiddy/artworks/internal/series"
	"github.com/pdiddy/artworks/pkg/types"
)

const (
	keySeriesFormat  = "series.format"
	keySeriesSubcats = "series.subcategories"
)

var seriesCmd = &cobra.Command{
	Use:   "series <csv_path>",
	Short: "Preview the series index the site builds from the records",
	Long: `Series reads and normalizes the CSV the same way the converter does,
then groups the records by series the way the site displays them: series
sorted by their order column, works sorted by sub_order then title.

Use --subcategory (repeatable) to keep only series with a matching work.
Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeries,
}

func init() {
	seriesCmd.Flags().String("format", string(types.SeriesTable), "output format: table, json, or yaml")
	seriesCmd.Flags().StringSlice("subcategory", nil, "keep series with a work in this subcategory (repeatable)")

	viper.SetDefault(keySeriesFormat, string(types.SeriesTable))
	viper.SetDefault(keySeriesSubcats, []string{})

	rootCmd.AddCommand(seriesCmd)
}

// seriesConfig resolves series settings: flags win over series.format and
// series.subcategories from the config file or ARTWORKS_SERIES_* variables.
// Subcategory lists are comma-separated, like the subcategories column.
func seriesConfig(cmd *cobra.Command) (types.SeriesConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return types.SeriesConfig{}, err
	}
	sc := cfg.Series

	if cmd.Flags().Changed("format") || sc.Format == "" {
		format, _ := cmd.Flags().GetString("format")
		sc.Format = types.SeriesFormat(format)
	}
	if cmd.Flags().Changed("subcategory") {
		sc.Subcategories, _ = cmd.Flags().GetStringSlice("subcategory")
	}
	sc.Subcategories = series.SplitSubcategories(strings.Join(sc.Subcategories, ","))
	return sc, nil
}

func runSeries(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg, err := seriesConfig(cmd)
	if err != nil {
		return err
	}

	ds, err := convert.Load(args[0])
	if err != nil {
		return err
	}
	all := series.Build(ds)
	shown := series.Filter(all, cfg.Subcategories)
	return formatSeriesOutput(cmd.OutOrStdout(), shown, series.Subcategories(all), cfg.Format)
}

// formatSeriesOutput prints shown in the requested format. The table ends
// with every subcategory in the dataset, the list the site offers as
// filters.
func formatSeriesOutput(w io.Writer, shown []series.Series, available []string, format types.SeriesFormat) error {
	all := shown
	if all == nil {
		all = []series.Series{}
	}

	switch format {
	case types.SeriesJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	case types.SeriesYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(all); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.SeriesTable, "":
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}

	if len(all) == 0 {
		fmt.Fprintln(w, "No series found.")
		printAvailable(w, available)
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-30s  %-30s  %-5s  %s\n", "Order", "Series", "Slug", "Works", "Subcategories")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, s := range all {
		fmt.Fprintf(w, "%-5s  %-30s  %-30s  %-5d  %s\n",
			formatOrder(s.Order), truncate(s.Name, 30), truncate(s.Slug, 30), len(s.Works),
			strings.Join(s.Subcategories, ", "))
	}
	fmt.Fprintf(w, "\n%d series\n", len(all))
	printAvailable(w, available)
	return nil
}

func printAvailable(w io.Writer, available []string) {
	if len(available) == 0 {
		return
	}
	fmt.Fprintf(w, "Available subcategories: %s\n", strings.Join(available, ", "))
}

func formatOrder(v float64) string {
	if v == series.DefaultOrder {
		return "-"
	}
	return fmt.Sprintf("%g", v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
