package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/homehub/pkg/config"
)

func restoreLogger(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetupJSON(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	Setup(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	log.Info().Msg("dropped")
	log.Warn().Str("device", "tv").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "tv", entry["device"])
	assert.Contains(t, entry, "time")
}

func TestSetupConsole(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	Setup(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	log.Debug().Msg("gate closed")

	assert.Contains(t, buf.String(), "gate closed")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetupUnknownLevel(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	Setup(config.LogConfig{Level: "chatty"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Setup(config.LogConfig{Level: ""}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
