// Package cli defines Cobra command definitions for the guessnumber CLI.
// This file contains the root command, which plays the game.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guessnumber/guessnumber/internal/config"
	"github.com/guessnumber/guessnumber/internal/game"
	"github.com/guessnumber/guessnumber/internal/log"
	"github.com/guessnumber/guessnumber/internal/tui"
	"github.com/guessnumber/guessnumber/internal/tui/app"
)

var (
	langFlag   string
	revealFlag bool
	seedFlag   int64
	logFlag    bool
	version    = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "guessnumber",
	Short: "Guess the secret number between 0 and 100",
	Long: `guessnumber picks a secret number between 0 and 100 and tells you
whether each guess is too low or too high. A correct guess starts a
new round with a fresh number. Runs as a terminal UI when attached to
a terminal and reads one guess per line otherwise.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&langFlag, "lang", "", "Message language: en or zh")
	rootCmd.Flags().BoolVar(&revealFlag, "reveal", false, "Show the secret number (debugging)")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Seed for reproducible targets (0 = random)")
	rootCmd.Flags().BoolVar(&logFlag, "log", false, "Append game events to .guessnumber/log.jsonl")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reportCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}

	var sink log.Sink = log.Discard
	if cfg.Log.Enabled {
		logger, err := log.NewLogger(dir)
		if err != nil {
			return fmt.Errorf("opening event log: %w", err)
		}
		sink = logger
	}

	model := tui.NewModel(cfg, newSession(cfg), sink)
	if !tui.IsTTY() {
		return tui.RunFallback(model, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return tui.Run(app.New(model))
}

// loadConfig layers defaults, the config file, the environment and flags,
// in that order, and validates only the final result.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = langFlag
	}
	if flags.Changed("reveal") {
		cfg.RevealTarget = revealFlag
	}
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("log") {
		cfg.Log.Enabled = logFlag
	}
}

func newSession(cfg *config.Config) *game.Session {
	if cfg.Seed != 0 {
		return game.NewSeeded(cfg.Seed)
	}
	return game.New(nil)
}
