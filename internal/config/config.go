package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string

	Redis RedisConfig
	Game  GameConfig

	// YearGroup is the UK school year (7-13). It is an opaque tag used
	// only to label content.
	YearGroup int
}

// RedisConfig selects the optional Redis state backend.
type RedisConfig struct {
	Addr     string // Empty disables Redis.
	Password string
	DB       int
}

// Enabled reports whether Redis should hold persisted state.
func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// GameConfig holds per-game tuning.
type GameConfig struct {
	BasePoints int // Points per correct answer before multipliers. Default: 100.
	Seconds    int // Countdown length for timed modes. Default: 60.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			BasePoints: 100,
			Seconds:    60,
		},
		YearGroup: 10,
	}
}

// Load reads a .env file from the working directory when present, then
// overlays CRAMGAMES_* environment variables on the defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = getenv("CRAMGAMES_DB")
	cfg.Redis.Addr = getenv("CRAMGAMES_REDIS_ADDR")
	cfg.Redis.Password = getenv("CRAMGAMES_REDIS_PASSWORD")

	ints := []struct {
		key string
		dst *int
		min int
		max int
	}{
		{"CRAMGAMES_REDIS_DB", &cfg.Redis.DB, 0, 15},
		{"CRAMGAMES_BASE_POINTS", &cfg.Game.BasePoints, 1, 10000},
		{"CRAMGAMES_GAME_SECONDS", &cfg.Game.Seconds, 10, 600},
		{"CRAMGAMES_YEAR_GROUP", &cfg.YearGroup, 7, 13},
	}
	for _, f := range ints {
		raw := getenv(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		if v < f.min || v > f.max {
			return Config{}, fmt.Errorf("%s: %d out of range [%d, %d]", f.key, v, f.min, f.max)
		}
		*f.dst = v
	}

	return cfg, nil
}
