package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	Clock   ClockConfig
	Logging LoggingConfig
}

// ClockConfig governs the synthetic clock used for journal ordering.
type ClockConfig struct {
	EpochMinutes int64
	Seed         int64
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultClockEpochMinutes = 1_048_000_000
	defaultClockSeed         = 1
	defaultLoggingLevel      = "info"
	defaultLoggingFormat     = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	epoch, err := parseInt64WithDefault("CLOCK_EPOCH_MINUTES", defaultClockEpochMinutes)
	if err != nil {
		return Config{}, err
	}
	if epoch < 0 {
		return Config{}, fmt.Errorf("CLOCK_EPOCH_MINUTES must not be negative, got %d", epoch)
	}
	cfg.Clock.EpochMinutes = epoch

	seed, err := parseInt64WithDefault("CLOCK_SEED", defaultClockSeed)
	if err != nil {
		return Config{}, err
	}
	cfg.Clock.Seed = seed

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseInt64WithDefault(key string, fallback int64) (int64, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}
