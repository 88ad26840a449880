package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "raw", cfg.DefaultMode)
	assert.Equal(t, 16, cfg.FrameIntervalMS)
	assert.Equal(t, 50, cfg.SettleDelayMS)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ReadOnly)
}

func TestColor_IsValid(t *testing.T) {
	assert.True(t, ColorAuto.IsValid())
	assert.True(t, ColorAlways.IsValid())
	assert.True(t, ColorNever.IsValid())
	assert.False(t, Color("sometimes").IsValid())
	assert.False(t, Color("").IsValid())
}

func TestYAML_RoundTrip(t *testing.T) {
	cfg := New()
	cfg.DefaultMode = "rendered"
	cfg.SettleDelayMS = 100
	cfg.ReadOnly = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "rendered", parsed.DefaultMode)
	assert.Equal(t, 100, parsed.SettleDelayMS)
	assert.True(t, parsed.ReadOnly)
}

func TestToYAMLWithHeader(t *testing.T) {
	cfg := New()

	data, err := cfg.ToYAMLWithHeader("# markmode configuration")
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# markmode configuration\n"))
	assert.Contains(t, text, "default_mode: raw")
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte("default_mode: [not, a, string"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	cfg := New()
	cfg.DefaultMode = "rendered"

	clone := cfg.Clone()
	require.NotNil(t, clone)

	clone.DefaultMode = "raw"
	assert.Equal(t, "rendered", cfg.DefaultMode)
}
