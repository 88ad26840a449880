package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/markmode/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "default_mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownModes lists valid mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownModes = map[string]bool{
	"raw":      true,
	"rendered": true,
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText: true,
	config.FormatJSON: true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if cfg == nil {
		result.Errors = append(result.Errors, ValidationError{
			Message: "configuration is nil",
		})
		return result
	}

	if cfg.DefaultMode != "" && !knownModes[cfg.DefaultMode] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "default_mode",
			Value:   cfg.DefaultMode,
			Message: fmt.Sprintf("unknown mode %q (expected raw or rendered)", cfg.DefaultMode),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("unknown color setting %q (expected auto, always, or never)", cfg.Color),
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("unknown log level %q", cfg.LogLevel),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("unknown output format %q (expected text or json)", cfg.Format),
		})
	}

	if cfg.FrameIntervalMS < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "frame_interval_ms",
			Value:   cfg.FrameIntervalMS,
			Message: "must not be negative",
		})
	}

	if cfg.SettleDelayMS < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "settle_delay_ms",
			Value:   cfg.SettleDelayMS,
			Message: "must not be negative",
		})
	}

	if cfg.SettleDelayMS > 1000 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "settle_delay_ms",
			Value:   cfg.SettleDelayMS,
			Message: "settle delay above one second makes mode switches feel sluggish",
		})
	}

	return result
}
