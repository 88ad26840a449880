package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/markmode/pkg/config"
)

// envVarPrefix is the prefix for all markmode environment variables.
const envVarPrefix = "MARKMODE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"DEFAULT_MODE":      {field: "default_mode", typ: envTypeString},
	"FRAME_INTERVAL_MS": {field: "frame_interval_ms", typ: envTypeInt},
	"SETTLE_DELAY_MS":   {field: "settle_delay_ms", typ: envTypeInt},
	"READ_ONLY":         {field: "read_only", typ: envTypeBool},
	"COLOR":             {field: "color", typ: envTypeString},
	"LOG_LEVEL":         {field: "log_level", typ: envTypeString},
	"FORMAT":            {field: "format", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MARKMODE_ (e.g., MARKMODE_COLOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "default_mode":
		cfg.DefaultMode = value
	case "color":
		cfg.Color = config.Color(value)
	case "log_level":
		cfg.LogLevel = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field %q", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "read_only":
		cfg.ReadOnly = value
	default:
		return fmt.Errorf("unknown boolean field %q", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "frame_interval_ms":
		cfg.FrameIntervalMS = value
	case "settle_delay_ms":
		cfg.SettleDelayMS = value
	default:
		return fmt.Errorf("unknown integer field %q", field)
	}
	return nil
}
