package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/montyhall/internal/config"
)

// Narration owns stdout; every log stream must go to stderr.
func TestZapConfig_WritesOnlyToStderr(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		zapCfg, err := zapConfig(config.LoggingConfig{Level: "info", Format: format})
		require.NoError(t, err)
		assert.Equal(t, []string{"stderr"}, zapCfg.OutputPaths, "format %q", format)
		assert.Equal(t, []string{"stderr"}, zapCfg.ErrorOutputPaths, "format %q", format)
		assert.NotContains(t, zapCfg.OutputPaths, "stdout")
	}
}

func TestZapConfig_Encoding(t *testing.T) {
	jsonCfg, err := zapConfig(config.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, "json", jsonCfg.Encoding)

	consoleCfg, err := zapConfig(config.LoggingConfig{Level: "info", Format: "console"})
	require.NoError(t, err)
	assert.Equal(t, "console", consoleCfg.Encoding)
}

func TestNewLogger_DefaultsEnableWarnOnly(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel), "debug must be disabled at warn")
	assert.False(t, logger.Core().Enabled(zap.InfoLevel), "round info must be disabled at warn")
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNewLogger_Rejects(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "trace", Format: "json"})
	assert.ErrorContains(t, err, "log level")

	_, err = NewLogger(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, "log format")
}

// Property: the configured level is the lowest enabled level.
func TestPropertyLevelThreshold(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, len(levels)-1).Draw(t, "level")
		zapCfg, err := zapConfig(config.LoggingConfig{Level: levels[idx], Format: "json"})
		require.NoError(t, err)
		for i, name := range levels {
			var lvl zap.AtomicLevel
			require.NoError(t, lvl.UnmarshalText([]byte(name)))
			assert.Equal(t, i >= idx, zapCfg.Level.Enabled(lvl.Level()), "configured %s, checking %s", levels[idx], name)
		}
	})
}
