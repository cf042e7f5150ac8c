package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	floatkiterrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

// isolate keeps the developer's own config and environment out of a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvPrefix+"_CONFIG", "")
	return dir
}

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "floatkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Select.Offset)
	assert.Equal(t, geometry.BottomStart, cfg.SelectPlacement())
	assert.Equal(t, 8, cfg.Tooltip.Offset)
	assert.Equal(t, 8, cfg.Tooltip.Padding)
	assert.Equal(t, 200*time.Millisecond, cfg.Tooltip.Delay)
	assert.Equal(t, geometry.Top, cfg.TooltipPlacement())
	assert.Equal(t, 5*time.Second, cfg.Toast.Duration)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsFileAndEnvironment(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `theme: dark
select:
  placement: top-end
tooltip:
  delay: 350ms
toast:
  max_visible: 3
`)
	t.Setenv("FLOATKIT_TOAST_MAX_VISIBLE", "2")
	t.Setenv("FLOATKIT_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, geometry.TopEnd, cfg.SelectPlacement())
	assert.Equal(t, 350*time.Millisecond, cfg.Tooltip.Delay)
	assert.Equal(t, 2, cfg.Toast.MaxVisible, "environment wins over the file")
	assert.Equal(t, "debug", cfg.LoggerOptions().Level)
	assert.Equal(t, 8, cfg.Tooltip.Offset, "unset keys keep their defaults")
}

func TestLoadFindsConfigInConfigHome(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "floatkit"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "floatkit", "config.yaml"), []byte("theme: light\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		field    string
	}{
		{name: "unknown placement", contents: "select:\n  placement: sideways\n", field: "select.placement"},
		{name: "unknown theme", contents: "theme: neon\n", field: "theme"},
		{name: "negative offset", contents: "tooltip:\n  offset: -1\n", field: "tooltip.offset"},
		{name: "zero toast duration", contents: "toast:\n  duration: 0s\n", field: "toast.duration"},
		{name: "unknown log level", contents: "log:\n  level: loud\n", field: "log.level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			_, err := Load(writeConfig(t, dir, tc.contents))
			require.Error(t, err)

			var ve *floatkiterrors.ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(writeConfig(t, dir, "tooltip:\n  offset: [1\n"))
	var pe *floatkiterrors.ParseError
	require.True(t, errors.As(err, &pe), "expected ParseError, got %T", err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Path, "missing.yaml")
}

func TestMarshalRendersHumanDurations(t *testing.T) {
	out, err := Marshal(Default())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "delay: 200ms")
	assert.Contains(t, text, "duration: 5s")
	assert.Contains(t, text, "placement: bottom-start")
	assert.Contains(t, text, "max_visible: 5")
	assert.Contains(t, text, "\ntooltip:\n  offset: ")
	assert.NotContains(t, text, "\n    ")
}

func TestValidateNil(t *testing.T) {
	err := Validate(nil)
	var ve *floatkiterrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "config", ve.Field)
}
