package types

// DefaultOutPath is where the converted JSON is written when no output path
// is configured. The site loads its data from this location.
const DefaultOutPath = "data/artworks.json"

// ConvertConfig holds settings for the CSV-to-JSON conversion.
type ConvertConfig struct {
	// Out is the output JSON path (default data/artworks.json).
	Out string `json:"out" yaml:"out" mapstructure:"out"`
}

// SeriesFormat selects how the series index is printed.
type SeriesFormat string

const (
	SeriesTable SeriesFormat = "table"
	SeriesJSON  SeriesFormat = "json"
	SeriesYAML  SeriesFormat = "yaml"
)

// SeriesConfig holds settings for the series preview.
type SeriesConfig struct {
	// Format selects the output format: table, json, or yaml.
	Format SeriesFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Subcategories restricts output to series with a work tagged with any
	// of these subcategories. Empty keeps every series.
	Subcategories []string `json:"subcategories" yaml:"subcategories" mapstructure:"subcategories"`
}

// Config groups all settings read from artworks.yaml and ARTWORKS_*
// environment variables.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert" mapstructure:"convert"`
	Series  SeriesConfig  `json:"series" yaml:"series" mapstructure:"series"`
}
