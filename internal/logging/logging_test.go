package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFallback(t *testing.T) {
	log := New(&bytes.Buffer{}, "chatty", FormatText)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log = New(&bytes.Buffer{}, "debug", FormatText)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "JSON")
	log.WithField("event_id", 6).Info("registered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "registered", entry["msg"])
	assert.EqualValues(t, 6, entry["event_id"])
}

func TestOpenFile(t *testing.T) {
	log, closeFn, err := OpenFile("", "info", FormatText)
	require.NoError(t, err)
	log.Info("dropped")
	closeFn()

	path := filepath.Join(t.TempDir(), "booking.log")
	log, closeFn, err = OpenFile(path, "info", FormatText)
	require.NoError(t, err)
	log.Info("kept")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
}
