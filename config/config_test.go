package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PATROL_PROFILE", "PATROL_INPUT", "PATROL_LOG_LEVEL", "PATROL_WORKERS"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ProfileDev, cfg.Profile)
	assert.Equal(t, []string{ProfileDev, ProfileProd}, cfg.ProfileNames())

	in, err := cfg.InputPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "example.txt"), in)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "patrol.yaml")

	cfg := DefaultConfig()
	cfg.Profile = ProfileProd
	cfg.Profiles[ProfileProd] = ProfileConfig{Input: "/data/day6.txt"}
	cfg.Search.Workers = 3
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	in, err := loaded.InputPath()
	require.NoError(t, err)
	assert.Equal(t, "/data/day6.txt", in)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: [unterminated"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PATROL_PROFILE", ProfileProd)
	t.Setenv("PATROL_LOG_LEVEL", "debug")
	t.Setenv("PATROL_WORKERS", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ProfileProd, cfg.Profile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Search.Workers)

	in, err := cfg.InputPath()
	require.NoError(t, err)
	assert.Equal(t, "input.txt", in)

	t.Setenv("PATROL_INPUT", "/tmp/override.txt")
	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	in, err = cfg.InputPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.txt", in)
}

func TestConfig_EnvOverrides_BadWorkers(t *testing.T) {
	clearEnv(t)
	t.Setenv("PATROL_WORKERS", "many")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"UnknownProfile", func(c *Config) { c.Profile = "staging" }, ErrUnknownProfile},
		{"EmptyProfileInput", func(c *Config) { c.Profiles["dev"] = ProfileConfig{} }, ErrInvalid},
		{"NegativeWorkers", func(c *Config) { c.Search.Workers = -1 }, ErrInvalid},
		{"NegativeMaxSteps", func(c *Config) { c.Search.MaxSteps = -1 }, ErrInvalid},
		{"BadLevel", func(c *Config) { c.Logging.Level = "trace" }, ErrInvalid},
		{"BadFormat", func(c *Config) { c.Logging.Format = "xml" }, ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.err)
		})
	}

	// An explicit input makes the profile irrelevant.
	cfg := DefaultConfig()
	cfg.Profile = "staging"
	cfg.Input = "map.txt"
	assert.NoError(t, cfg.Validate())
}
