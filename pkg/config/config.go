// Package config defines core configuration types for markmode.
// These types are pure data structures; discovery, environment overrides,
// and validation live in the configloader.
package config

// Color controls whether styled terminal output is produced.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// IsValid returns true if the color setting is valid.
func (c Color) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format for map inspection.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration structure for markmode.
type Config struct {
	// DefaultMode is the mode the editor starts in ("raw" or "rendered").
	DefaultMode string `mapstructure:"default_mode" yaml:"default_mode"`

	// FrameIntervalMS paces the switch protocol's frame waits.
	FrameIntervalMS int `mapstructure:"frame_interval_ms" yaml:"frame_interval_ms"`

	// SettleDelayMS is the rendered surface's post-readiness settle delay.
	SettleDelayMS int `mapstructure:"settle_delay_ms" yaml:"settle_delay_ms"`

	// ReadOnly blocks content mutation on every surface.
	ReadOnly bool `mapstructure:"read_only" yaml:"read_only"`

	// Color controls styled terminal output.
	Color Color `mapstructure:"color" yaml:"color"`

	// LogLevel sets the logger verbosity ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format for map inspection.
	Format OutputFormat `mapstructure:"-" yaml:"-"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		DefaultMode:     "raw",
		FrameIntervalMS: 16,
		SettleDelayMS:   50,
		Color:           ColorAuto,
		LogLevel:        "info",
		Format:          FormatText,
	}
}
