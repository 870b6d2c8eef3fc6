package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		ConfigEnv, "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
		"ESSENTIALS_UI_WIDTH", "ESSENTIALS_TRACE_ENDPOINT", "ESSENTIALS_LOG_FILE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, "86", cfg.UI.AccentColor)
	assert.Equal(t, "205", cfg.UI.HighlightColor)
	assert.Equal(t, 80, cfg.UI.Width)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Trace.Endpoint)
	assert.Equal(t, "essentials", cfg.Trace.ServiceName)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "essentials.toml")
	data := `
[ui]
alt_screen = false
accent_color = "33"
width = 100

[trace]
endpoint = "localhost:4318"
service_name = "essentials-dev"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, "33", cfg.UI.AccentColor)
	assert.Equal(t, "205", cfg.UI.HighlightColor)
	assert.Equal(t, 100, cfg.UI.Width)
	assert.Equal(t, "localhost:4318", cfg.Trace.Endpoint)
	assert.Equal(t, "essentials-dev", cfg.Trace.ServiceName)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "essentials")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log]\nfile = \"/tmp/essentials.log\"\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/essentials.log", cfg.Log.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ESSENTIALS_UI_WIDTH", "120")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.UI.Width)
	assert.Equal(t, "collector:4318", cfg.Trace.Endpoint)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_RejectsNonPositiveWidth(t *testing.T) {
	isolate(t)
	t.Setenv("ESSENTIALS_UI_WIDTH", "0")
	_, err := Load("")
	assert.ErrorContains(t, err, "ui.width")
}
