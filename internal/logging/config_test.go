package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"info":    zerolog.InfoLevel,
	}
	for raw, want := range cases {
		got, ok := ParseLevel(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := ParseLevel("")
	assert.False(t, ok)
	_, ok = ParseLevel("loud")
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.True(t, cfg.NoColor)
}

func TestApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvLogLevel, "very-loud")
	t.Setenv(EnvLogTimestamp, "maybe")

	cfg := defaultConfig(ProfileTest)
	applyEnvOverrides(&cfg)
	assert.Equal(t, zerolog.TraceLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
}

func TestAdapterWritesLevels(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	a := NewAdapter(zerolog.New(&buf).Level(zerolog.TraceLevel))

	a.Tracef("input=%s", "7E")
	a.Debugf("addr=%d", 160)
	a.Errorf("frame of unknown type")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"level":"trace"`)
	assert.Contains(t, lines[0], `"message":"input=7E"`)
	assert.Contains(t, lines[1], `"level":"debug"`)
	assert.Contains(t, lines[2], `"level":"error"`)
}

func TestApplyConfigLevelEnvironmentWins(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	t.Setenv(EnvLogLevel, "debug")
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	applied, err := ApplyConfigLevel("info")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestApplyConfigLevelFromFile(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
	t.Setenv(EnvLogLevel, "")

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	applied, err := ApplyConfigLevel("")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())

	applied, err = ApplyConfigLevel("warning")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	_, err = ApplyConfigLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
