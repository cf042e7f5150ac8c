package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithComponentAndFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("geometry").WithFields(map[string]any{"placement": "bottom"})
	log.Info("flipped")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "flipped", entry["message"])
	require.Equal(t, "geometry", entry["component"])
	require.Equal(t, "bottom", entry["placement"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("toast")
	log.Error(errors.New("boom"), "listener failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "listener failed", entry["message"])
	require.Equal(t, "toast", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerNestsComponents(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.WithComponent("demo").WithFields(map[string]any{"id": "fruit"}).WithComponent("select").Info("opened")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "demo.select", entry["component"])
	require.Equal(t, "fruit", entry["id"])
}

func TestLoggerDebugEnabled(t *testing.T) {
	t.Parallel()

	quiet, err := New(Options{Level: "warn"})
	require.NoError(t, err)
	require.False(t, quiet.DebugEnabled())

	loud, err := New(Options{Level: "DEBUG"})
	require.NoError(t, err)
	require.True(t, loud.DebugEnabled())

	var none *Logger
	require.False(t, none.DebugEnabled())
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.WithComponent("toast").Warn("queue full")

	out := buf.String()
	require.Contains(t, out, "toast")
	require.Contains(t, out, "queue full")
	require.NotContains(t, out, "{")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.WithComponent("x").WithFields(map[string]any{"a": 1}).Info("ignored")
		log.Error(errors.New("ignored"), "ignored")
	})
	require.NotPanics(t, func() { Nop().Warn("dropped") })
}
