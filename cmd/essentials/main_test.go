package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"essentials/internal/content"
	"essentials/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"ESSENTIALS_CONFIG", "OTEL_EXPORTER_OTLP_ENDPOINT", "ESSENTIALS_TRACE_ENDPOINT", "ESSENTIALS_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-print", "-topic", "state", "-inline"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, opts.print)
	assert.True(t, opts.inline)
	assert.Equal(t, "state", opts.topic)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"-topic", "state"}, io.Discard)
	assert.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"-print", "-topic", "hooks"}, io.Discard)
	assert.ErrorIs(t, err, errUsage)
	assert.ErrorIs(t, err, content.ErrUnknownTopic)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = parseFlags([]string{"-bogus"}, io.Discard)
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_PrintUnselected(t *testing.T) {
	isolateEnv(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), options{print: true}, &out))
	assert.Contains(t, out.String(), content.HeaderTitle)
	assert.Contains(t, out.String(), ui.ConceptsTitle)
	assert.Contains(t, out.String(), ui.PlaceholderPrompt)
}

func TestRun_PrintWithTopic(t *testing.T) {
	isolateEnv(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), options{print: true, topic: "props"}, &out))
	assert.NotContains(t, out.String(), ui.PlaceholderPrompt)
	assert.Contains(t, out.String(), "props.name")
}

func TestRun_WritesLogFile(t *testing.T) {
	isolateEnv(t)
	logPath := filepath.Join(t.TempDir(), "essentials.log")
	t.Setenv("ESSENTIALS_LOG_FILE", logPath)

	require.NoError(t, run(context.Background(), options{print: true}, io.Discard))
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "start: print=true tracing=false"))
}

func TestRun_BadConfig(t *testing.T) {
	isolateEnv(t)
	err := run(context.Background(), options{print: true, configPath: filepath.Join(t.TempDir(), "missing.toml")}, io.Discard)
	assert.ErrorContains(t, err, "read config")
}
