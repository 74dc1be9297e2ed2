package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpatrol/config"
	"github.com/katalvlaran/lvpatrol/labmap"
)

// execute runs the CLI with args against a config path that does not exist,
// so defaults plus flags decide everything.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PATROL_PROFILE", "PATROL_INPUT", "PATROL_WORKERS"} {
		t.Setenv(k, "")
	}
	t.Setenv("PATROL_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "patrol.yaml")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolve_DevProfile(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "41\n6\n", out)
}

func TestSolve_ExplicitInput(t *testing.T) {
	out, err := execute(t, "solve", "--input", filepath.Join("testdata", "example.txt"), "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "41\n6\n", out)
}

func TestSolve_MalformedMap(t *testing.T) {
	_, err := execute(t, "solve", "--input", filepath.Join("testdata", "ragged.txt"))
	require.Error(t, err)
	var mg *labmap.MalformedGridError
	require.True(t, errors.As(err, &mg), "error %v is not a MalformedGridError", err)
	assert.ErrorIs(t, err, labmap.ErrNonRectangular)
	assert.Equal(t, 2, mg.Line)
}

func TestSolve_UnknownProfile(t *testing.T) {
	_, err := execute(t, "--profile", "staging")
	assert.ErrorIs(t, err, config.ErrUnknownProfile)
}

func TestSolve_ConfigFile(t *testing.T) {
	for _, k := range []string{"PATROL_PROFILE", "PATROL_INPUT", "PATROL_WORKERS", "PATROL_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "patrol.yaml")

	cfg := config.DefaultConfig()
	cfg.Profile = "fixture"
	cfg.Profiles["fixture"] = config.ProfileConfig{Input: filepath.Join("testdata", "example.txt")}
	cfg.Logging.Level = "warn"
	cfg.Search.Workers = 1
	require.NoError(t, cfg.Save(path))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "41\n6\n", out.String())
}

func TestTrace(t *testing.T) {
	out, err := execute(t, "trace")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, 40, strings.Count(out, "X")) // 41 tiles minus the start
	assert.Equal(t, 1, strings.Count(out, "^"))
	assert.Equal(t, 8, strings.Count(out, "#"))
	assert.Equal(t, "....#.....", lines[0])
}

func TestTrace_Placements(t *testing.T) {
	out, err := execute(t, "trace", "--placements")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "O"))
	assert.Equal(t, 34, strings.Count(out, "X"))
}
