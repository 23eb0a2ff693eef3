package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("TETRIS_LEVEL is lowercased", func(t *testing.T) {
		t.Setenv("TETRIS_LEVEL", "Adventurer")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, LevelAdventurer, cfg.Level)
	})

	t.Run("TETRIS_SEED parses", func(t *testing.T) {
		t.Setenv("TETRIS_SEED", "42")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, uint64(42), cfg.Seed)
	})

	t.Run("bad TETRIS_SEED is ignored", func(t *testing.T) {
		t.Setenv("TETRIS_SEED", "forty-two")

		cfg := DefaultConfig()
		cfg.Seed = 5
		cfg.applyEnvOverrides()

		assert.Equal(t, uint64(5), cfg.Seed)
	})

	t.Run("TETRIS_LOG_LEVEL", func(t *testing.T) {
		t.Setenv("TETRIS_LOG_LEVEL", "DEBUG")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		t.Setenv("TETRIS_LEVEL", "")
		t.Setenv("TETRIS_SEED", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig(), cfg)
	})
}
