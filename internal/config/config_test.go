package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	state := t.TempDir()
	for _, k := range []string{"SAFEGUARD_DB", "SAFEGUARD_CONTENT", "SAFEGUARD_LOG_LEVEL", "SAFEGUARD_LOG_FORMAT", "SAFEGUARD_LOG_FILE", "SAFEGUARD_LOCATION", "SAFEGUARD_GPS_PROMPT_DELAY_MS", "SAFEGUARD_SHUFFLE"} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_STATE_HOME", state)

	cfg := Load()

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, filepath.Join(state, "safeguard", "safeguard.log"), cfg.LogFile)
	assert.Equal(t, 1500*time.Millisecond, cfg.GPSPromptDelay)
	assert.False(t, cfg.ShuffleQuiz)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SAFEGUARD_DB", "/tmp/x.db")
	t.Setenv("SAFEGUARD_LOG_LEVEL", "debug")
	t.Setenv("SAFEGUARD_LOCATION", "28.6,77.2")
	t.Setenv("SAFEGUARD_GPS_PROMPT_DELAY_MS", "0")
	t.Setenv("SAFEGUARD_SHUFFLE", "true")

	cfg := Load()

	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "28.6,77.2", cfg.Location)
	assert.Equal(t, time.Duration(0), cfg.GPSPromptDelay)
	assert.True(t, cfg.ShuffleQuiz)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("SAFEGUARD_GPS_PROMPT_DELAY_MS", "soon")
	t.Setenv("SAFEGUARD_SHUFFLE", "maybe")

	cfg := Load()

	assert.Equal(t, 1500*time.Millisecond, cfg.GPSPromptDelay)
	assert.False(t, cfg.ShuffleQuiz)
}
