// Package config loads the game configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/inventory"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Level selects which containers and menu options a session offers.
type Level string

const (
	LevelNovice     Level = "novice"     // queue only
	LevelAdventurer Level = "adventurer" // queue + reserve
	LevelMaster     Level = "master"     // queue + reserve + swaps
)

// Levels lists the accepted levels, simplest first.
var Levels = []Level{LevelNovice, LevelAdventurer, LevelMaster}

// Config holds all game configuration.
type Config struct {
	Level Level `yaml:"level"`

	// Seed for piece kinds; 0 picks a time-based seed.
	Seed uint64 `yaml:"seed"`

	Queue    QueueConfig    `yaml:"queue"`
	Reserve  ReserveConfig  `yaml:"reserve"`
	Exchange ExchangeConfig `yaml:"exchange"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// QueueConfig sizes the upcoming-piece queue.
type QueueConfig struct {
	Capacity int `yaml:"capacity"`
}

// ReserveConfig sizes the reserve stack.
type ReserveConfig struct {
	Capacity int `yaml:"capacity"`
}

// ExchangeConfig configures swap operations.
type ExchangeConfig struct {
	BatchSize int `yaml:"batch_size"`
}

// DefaultConfig returns the classic master-level game.
func DefaultConfig() *Config {
	inv := inventory.DefaultOptions()
	return &Config{
		Level:    LevelMaster,
		Queue:    QueueConfig{Capacity: inv.QueueCapacity},
		Reserve:  ReserveConfig{Capacity: inv.ReserveCapacity},
		Exchange: ExchangeConfig{BatchSize: inv.BatchSize},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; env overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies TETRIS_* environment variables.
// Unparseable values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("TETRIS_LEVEL")); v != "" {
		c.Level = Level(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("TETRIS_SEED")); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := strings.TrimSpace(os.Getenv("TETRIS_LOG_LEVEL")); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidConfig, c.Level)
	}
	if c.Queue.Capacity < 1 {
		return fmt.Errorf("%w: queue.capacity must be at least 1, got %d", ErrInvalidConfig, c.Queue.Capacity)
	}
	if c.Reserve.Capacity < 1 {
		return fmt.Errorf("%w: reserve.capacity must be at least 1, got %d", ErrInvalidConfig, c.Reserve.Capacity)
	}
	if c.Exchange.BatchSize < 1 {
		return fmt.Errorf("%w: exchange.batch_size must be at least 1, got %d", ErrInvalidConfig, c.Exchange.BatchSize)
	}
	if c.Exchange.BatchSize > min(c.Queue.Capacity, c.Reserve.Capacity) {
		return fmt.Errorf("%w: exchange.batch_size %d exceeds queue or reserve capacity",
			ErrInvalidConfig, c.Exchange.BatchSize)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

// Inventory returns the container sizes for inventory.New.
func (c *Config) Inventory() inventory.Options {
	return inventory.Options{
		QueueCapacity:   c.Queue.Capacity,
		ReserveCapacity: c.Reserve.Capacity,
		BatchSize:       c.Exchange.BatchSize,
	}
}

// Valid reports whether l is one of Levels.
func (l Level) Valid() bool {
	for _, v := range Levels {
		if l == v {
			return true
		}
	}
	return false
}
