// Package config loads runner settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	engine "github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine"
	"github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/service/internal/game"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvEpisodes        = "SPIDER_EPISODES"
	EnvWorkers         = "SPIDER_WORKERS"
	EnvSeed            = "SPIDER_SEED"
	EnvNumSuits        = "SPIDER_NUM_SUITS"
	EnvMaxEpisodeSteps = "SPIDER_MAX_EPISODE_STEPS"
	EnvHideObs         = "SPIDER_HIDE_OBS"
	EnvLogLevel        = "SPIDER_LOG_LEVEL"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the runner needs.
type Config struct {
	Episodes        int
	Workers         int
	BaseSeed        uint64 // episode i is dealt with BaseSeed+i
	SeedFromEnv     bool   // false when BaseSeed was drawn by engine.NewSeed
	NumSuits        uint8
	MaxEpisodeSteps int
	HideObs         bool
	LogLevel        logrus.Level
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Episodes:        10,
		Workers:         1,
		BaseSeed:        1,
		NumSuits:        engine.DefaultRules().NumSuits,
		MaxEpisodeSteps: game.DefaultMaxEpisodeSteps,
		HideObs:         true,
		LogLevel:        logrus.WarnLevel,
	}
}

// Load reads files into the process environment (default .env; a missing
// file is ignored), then overlays any SPIDER_* variables on Default.
// Variables already set in the environment win over file values. Without
// SPIDER_SEED the base seed is drawn at random; it is kept in BaseSeed so
// the batch can be replayed.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg := Default()
	var err error
	if cfg.Episodes, err = envInt(EnvEpisodes, cfg.Episodes); err != nil {
		return cfg, err
	}
	if cfg.Workers, err = envInt(EnvWorkers, cfg.Workers); err != nil {
		return cfg, err
	}
	if cfg.MaxEpisodeSteps, err = envInt(EnvMaxEpisodeSteps, cfg.MaxEpisodeSteps); err != nil {
		return cfg, err
	}
	if v := getenv(EnvSeed); v != "" {
		if cfg.BaseSeed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		cfg.SeedFromEnv = true
	} else {
		cfg.BaseSeed = engine.NewSeed()
	}
	if v := getenv(EnvNumSuits); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvNumSuits, v, err)
		}
		cfg.NumSuits = uint8(n)
	}
	if v := getenv(EnvHideObs); v != "" {
		cfg.HideObs = asBool(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvLogLevel, v, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the runner cannot honour.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: episodes must be positive, got %d", ErrInvalidConfig, c.Episodes)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.MaxEpisodeSteps <= 0 {
		return fmt.Errorf("%w: max episode steps must be positive, got %d", ErrInvalidConfig, c.MaxEpisodeSteps)
	}
	return nil
}

// Rules returns the engine rules described by c.
func (c Config) Rules() engine.Rules {
	return engine.Rules{NumSuits: c.NumSuits}
}

func getenv(k string) string {
	return strings.TrimSpace(os.Getenv(k))
}

func envInt(k string, def int) (int, error) {
	v := getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s=%q: %w", k, v, err)
	}
	return n, nil
}

func asBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// EnvOptions returns the game.Env options described by c.
func (c Config) EnvOptions(log logrus.FieldLogger) game.Options {
	return game.Options{
		Rules:           c.Rules(),
		MaxEpisodeSteps: c.MaxEpisodeSteps,
		HideObs:         c.HideObs,
		Log:             log,
	}
}
