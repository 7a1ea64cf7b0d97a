package material

// Config holds configuration for the material feature.
type Config struct {
	// Enabled toggles the material feature's HTTP endpoints.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
