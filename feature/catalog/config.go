package catalog

import "strings"

// Config holds configuration for catalog generation.
type Config struct {
	// Enabled toggles the catalog feature's HTTP endpoints.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// OutputDir is the directory generated tables are written to.
	OutputDir string `mapstructure:"output_dir" default:"output"`
	// Materials is the comma-separated list of material categories the
	// bolt and assembly catalogs enumerate.
	Materials string `mapstructure:"materials" default:"Steel,Stainless Steel,Brass"`
	// Delimiter is the field separator of the delimited tables.
	Delimiter string `mapstructure:"delimiter" default:";"`
}

// MaterialNames returns the configured material categories, trimmed.
func (c Config) MaterialNames() []string {
	parts := strings.Split(c.Materials, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// IsValidDelimiter checks whether the configured delimiter is one the
// downstream importer accepts.
func (c Config) IsValidDelimiter() bool {
	return c.Delimiter == ";" || c.Delimiter == ","
}
