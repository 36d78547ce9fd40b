package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, cfg.Redis.Enabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"CRAMGAMES_DB":           "/tmp/cg.db",
		"CRAMGAMES_REDIS_ADDR":   "localhost:6379",
		"CRAMGAMES_REDIS_DB":     "2",
		"CRAMGAMES_BASE_POINTS":  "50",
		"CRAMGAMES_GAME_SECONDS": "90",
		"CRAMGAMES_YEAR_GROUP":   "11",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cg.db", cfg.DBPath)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 50, cfg.Game.BasePoints)
	assert.Equal(t, 90, cfg.Game.Seconds)
	assert.Equal(t, 11, cfg.YearGroup)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"CRAMGAMES_BASE_POINTS":  "lots",
		"CRAMGAMES_GAME_SECONDS": "5",
		"CRAMGAMES_YEAR_GROUP":   "14",
		"CRAMGAMES_REDIS_DB":     "-1",
	}
	for key, val := range tests {
		_, err := FromEnv(envMap(map[string]string{key: val}))
		assert.Error(t, err, "%s=%s", key, val)
	}
}
