package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every SPIDER_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvEpisodes, EnvWorkers, EnvSeed, EnvNumSuits, EnvMaxEpisodeSteps, EnvHideObs, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, cfg.SeedFromEnv)
	want := Default()
	want.BaseSeed = cfg.BaseSeed
	assert.Equal(t, want, cfg)
	assert.Equal(t, uint8(4), cfg.NumSuits)
	assert.Equal(t, 700, cfg.MaxEpisodeSteps)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEpisodes, "25")
	t.Setenv(EnvWorkers, "4")
	t.Setenv(EnvSeed, "1000")
	t.Setenv(EnvNumSuits, "2")
	t.Setenv(EnvMaxEpisodeSteps, "300")
	t.Setenv(EnvHideObs, "no")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Episodes:        25,
		Workers:         4,
		BaseSeed:        1000,
		SeedFromEnv:     true,
		NumSuits:        2,
		MaxEpisodeSteps: 300,
		HideObs:         false,
		LogLevel:        logrus.DebugLevel,
	}, cfg)
}

// TestLoadDotEnvFile verifies file values apply only where the process
// environment is unset.
func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvEpisodes)
	os.Unsetenv(EnvNumSuits)
	t.Setenv(EnvWorkers, "3")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SPIDER_EPISODES=7\nSPIDER_NUM_SUITS=1\nSPIDER_WORKERS=9\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvEpisodes)
		os.Unsetenv(EnvNumSuits)
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Episodes)
	assert.Equal(t, uint8(1), cfg.NumSuits)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{EnvEpisodes, "many"},
		{EnvSeed, "-1"},
		{EnvNumSuits, "300"},
		{EnvLogLevel, "loud"},
		{EnvNumSuits, "3"},
		{EnvWorkers, "0"},
		{EnvMaxEpisodeSteps, "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.NumSuits = 5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Episodes = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestEnvOptions(t *testing.T) {
	cfg := Default()
	cfg.NumSuits = 2
	cfg.MaxEpisodeSteps = 50
	opts := cfg.EnvOptions(nil)
	assert.Equal(t, uint8(2), opts.Rules.NumSuits)
	assert.Equal(t, 50, opts.MaxEpisodeSteps)
	assert.True(t, opts.HideObs)
	assert.Nil(t, opts.Log)
}

// TestLoadRandomSeed verifies an unset seed gives each run its own deals.
func TestLoadRandomSeed(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.env")
	a, err := Load(missing)
	require.NoError(t, err)
	b, err := Load(missing)
	require.NoError(t, err)
	assert.NotEqual(t, a.BaseSeed, b.BaseSeed)

	t.Setenv(EnvSeed, "0")
	c, err := Load(missing)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), c.BaseSeed)
	assert.True(t, c.SeedFromEnv)
}
