// tetris is a falling-block puzzle for the terminal, with a move-search AI
// and a genetic optimizer that tunes the AI's weights.
//
// Usage:
//
//	tetris                   - Play (same as tetris play)
//	tetris play              - Play in the terminal
//	tetris auto              - Watch the AI play, or run it headless
//	tetris learn             - Train AI weights with the genetic optimizer
//	tetris gui               - Play in a window
//	tetris menu              - Pick a mode interactively
//	tetris scores [mode]     - Show high scores
//	tetris runs              - List training runs
//	tetris export <run-id>   - Write a training run to Parquet
//
// Global flags:
//
//	--fps <rate>          - Redraw rate (default: 60)
//	--seed <value>        - RNG seed for reproducible games and training
//	--db <path>           - Database path (default: ~/.tetris/scores.db)
//	--config <path>       - Custom tetris.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with an AI that learns to play",
	Long: `A falling-block puzzle for the terminal.

Available commands:
  play     - Play in the terminal (default)
  auto     - Watch the AI play, or run it headless
  learn    - Train AI weights with a genetic optimizer
  gui      - Play in a window
  menu     - Interactive mode picker
  scores   - View high scores
  runs     - List training runs
  export   - Export a training run to Parquet

Examples:
  tetris
  tetris play --difficulty hard
  tetris auto --genome 100,1,10,100
  tetris auto --headless --lines 500
  tetris learn --headless --export run.parquet
  tetris scores auto`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(exportCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig reads tetris.yaml and applies --difficulty.
func loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fatal("%v", err)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the database. Interactive modes keep working without it.
func openStore(required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			fatal("could not open database: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newLogger builds the process logger. Full-screen modes log to
// ~/.tetris/tetris.log so output does not tear the display; headless modes log
// to stderr. The returned func closes the log file.
func newLogger(headless bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		fatal("invalid --log-level %q", flagLogLevel)
	}
	opts := log.Options{ReportTimestamp: true, Prefix: "tetris", Level: level}

	if headless {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}
	dir := filepath.Join(home, ".tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetris.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}

// runtimeConfig reads the terminal size for full-screen modes.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
