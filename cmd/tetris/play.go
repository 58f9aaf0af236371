package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop
  Up, X             - Rotate clockwise
  Z                 - Rotate counter-clockwise
  Space             - Hard drop
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow start, speeds up every 15 lines
  normal - One row per second, speeds up every 10 lines
  hard   - Fast start, speeds up every 5 lines
  fixed  - No speed-up

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(false)
	if store != nil {
		defer store.Close()
	}

	err := tui.Run(tui.Options{
		Mode:     tui.ModePlay,
		Seed:     flagSeed,
		Config:   cfg,
		Genome:   ai.DefaultGenome,
		Store:    store,
		Logger:   logger,
		TickRate: flagFPS,
	})
	if err != nil {
		fatal("running game: %v", err)
	}
}
