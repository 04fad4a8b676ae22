package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/catatsuy/methodtree/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := logging.New(logging.Default(), &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Info().Str("route", "/users/:id").Msg("registered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/users/:id", entry["route"])
	assert.Equal(t, "registered", entry["message"])
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Default()
	cfg.Level = "WARN"
	log, _, err := logging.New(cfg, &buf)
	require.NoError(t, err)

	log.Info().Msg("should not appear")
	log.Warn().Msg("warn ok")

	assert.NotContains(t, buf.String(), "should not appear")
	assert.Contains(t, buf.String(), "warn ok")
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Default()
	cfg.Format = logging.FormatConsole
	log, _, err := logging.New(cfg, &buf)
	require.NoError(t, err)

	log.Info().Str("method", "GET").Msg("matched")

	assert.Contains(t, buf.String(), "matched")
	assert.Contains(t, buf.String(), "method=GET")
}

func TestNewWritesFile(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Default()
	cfg.File = filepath.Join(t.TempDir(), "methodtree.log")
	log, closer, err := logging.New(cfg, &buf)
	require.NoError(t, err)

	log.Error().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := logging.Default()
	cfg.Level = "loud"
	_, _, err := logging.New(cfg, &bytes.Buffer{})
	assert.Error(t, err)

	cfg = logging.Default()
	cfg.Format = "xml"
	_, _, err = logging.New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
