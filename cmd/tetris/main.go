// Command tetris runs the piece inventory game in the terminal.
//
// Usage:
//
//	go run ./cmd/tetris --level master --seed 42
//	go run ./cmd/tetris config
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/config"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/inventory"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/logging"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/piece"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/session"
)

var (
	// Global flags
	configPath string
	level      string
	seed       uint64
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd plays the game
var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris piece inventory: upcoming queue and reserve stack",
	Long: `Manages the pieces of a Tetris-style game from the terminal.

Upcoming pieces wait in a fixed-size circular queue; pieces set aside wait in
a fixed-size reserve stack. Each turn you pick an action from the menu:

  novice      play or insert pieces in the queue
  adventurer  adds the reserve stack
  master      adds single and batch swaps between queue and reserve`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: play,
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration after applying the config file, TETRIS_*
environment variables and command-line flags, in that order.`,
	Args: cobra.NoArgs,
	RunE: showConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "tetris.yaml", "path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "", "game level: novice, adventurer or master")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for piece kinds (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(configCmd)
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("level") {
		cfg.Level = config.Level(level)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	return nil
}

func play(cmd *cobra.Command, args []string) error {
	gen := piece.NewGenerator(piece.NewSource(cfg.Seed))
	inv := inventory.New(cfg.Inventory(), gen)

	s := session.New(inv, cmd.InOrStdin(), cmd.OutOrStdout(),
		session.WithLevel(cfg.Level),
		session.WithLogger(logger),
	)

	err := s.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

func showConfig(cmd *cobra.Command, args []string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
