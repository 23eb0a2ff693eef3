package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/config"
)

// execute runs the root command with args and stdin, resetting the global
// flags between runs.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	configPath, level, seed, verbose = "tetris.yaml", "", 0, false
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		for _, f := range []string{"level", "seed", "verbose", "config"} {
			if fl := rootCmd.PersistentFlags().Lookup(f); fl != nil {
				fl.Changed = false
			}
		}
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.yaml")
}

func TestPlay_Quit(t *testing.T) {
	out, err := execute(t, "1\n0\n", "--config", missingConfig(t), "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "CURRENT STATE")
	assert.Contains(t, out, "Played piece [")
	assert.Contains(t, out, "Exiting...")
	assert.Contains(t, out, "5 - Swap first queue pieces")
}

func TestPlay_SameSeedSameGame(t *testing.T) {
	args := []string{"--config", missingConfig(t), "--seed", "99"}
	first, err := execute(t, "1\n1\n0\n", args...)
	require.NoError(t, err)
	second, err := execute(t, "1\n1\n0\n", args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlay_LevelFlag(t *testing.T) {
	out, err := execute(t, "0\n", "--config", missingConfig(t), "--level", "novice")
	require.NoError(t, err)

	assert.Contains(t, out, "2 - Insert a new piece")
	assert.NotContains(t, out, "Reserve")
}

func TestPlay_InvalidLevel(t *testing.T) {
	_, err := execute(t, "", "--config", missingConfig(t), "--level", "grandmaster")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigCmd_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: adventurer\nqueue:\n  capacity: 6\n"), 0644))

	out, err := execute(t, "", "config", "--config", path, "--seed", "3")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.LevelAdventurer, got.Level)
	assert.Equal(t, 6, got.Queue.Capacity)
	assert.Equal(t, uint64(3), got.Seed)
	assert.Equal(t, 3, got.Reserve.Capacity)
}
