package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	logger := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetupWriter_JSON(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer

	require.NoError(t, SetupWriter(&buf, "warn", "json"))
	log.Info().Msg("dropped")
	log.Warn().Str("size", "small").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "small", entry["size"])
	assert.Contains(t, entry, "time")
}

func TestSetupWriter_Console(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer

	require.NoError(t, SetupWriter(&buf, "", "console"))
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupWriter_Invalid(t *testing.T) {
	restoreGlobals(t)

	assert.Error(t, SetupWriter(&bytes.Buffer{}, "loud", "json"))
	assert.Error(t, SetupWriter(&bytes.Buffer{}, "info", "xml"))
}
