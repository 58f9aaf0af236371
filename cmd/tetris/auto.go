package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagGenome   string
	flagHeadless bool
	flagLines    int
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Watch the AI play",
	Long: `Let the move-search AI play. The genome is four weights in the order
line, height_max, height_diff, dead_space.

In the terminal the AI places one piece per autoplay.interval_ms; P pauses,
R restarts and Q quits. With --headless the game runs as fast as possible
and prints a summary.

Examples:
  tetris auto
  tetris auto --genome 120,3,14,90
  tetris auto --headless --lines 1000 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runAuto,
}

func init() {
	autoCmd.Flags().StringVar(&flagGenome, "genome", "", "AI weights (default from config)")
	autoCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a display and print the result")
	autoCmd.Flags().IntVar(&flagLines, "lines", -1, "Stop after this many lines in headless mode (0 = until game over, default from config)")
}

// genomeFor resolves --genome against the config.
func genomeFor(cfg config.TetrisConfig) ai.Genome {
	s := cfg.Autoplay.Genome
	if flagGenome != "" {
		s = flagGenome
	}
	genome, err := ai.ParseGenome(s)
	if err != nil {
		fatal("%v", err)
	}
	return genome
}

func runAuto(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	genome := genomeFor(cfg)
	logger, closeLog := newLogger(flagHeadless)
	defer closeLog()

	store := openStore(false)
	if store != nil {
		defer store.Close()
	}

	if !flagHeadless {
		err := tui.Run(tui.Options{
			Mode:     tui.ModeAuto,
			Seed:     flagSeed,
			Config:   cfg,
			Genome:   genome,
			Store:    store,
			Logger:   logger,
			TickRate: flagFPS,
		})
		if err != nil {
			fatal("running game: %v", err)
		}
		return
	}

	lineCap := cfg.Autoplay.LineCap
	if flagLines >= 0 {
		lineCap = flagLines
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := seed()
	logger.Info("autoplay started", "seed", s, "genome", genome.String(), "line_cap", lineCap)
	start := time.Now()
	res, err := ai.Play(ctx, tetris.New(s), genome, lineCap)
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal("%v", err)
	}
	logger.Info("autoplay finished", "score", res.Score, "lines", res.Lines,
		"pieces", res.Pieces, "elapsed", time.Since(start).Round(time.Millisecond))

	if store != nil && err == nil {
		if _, serr := store.SaveScore(storage.ModeAuto, res.Score, res.Lines); serr != nil {
			logger.Warn("save score", "err", serr)
		}
	}

	fmt.Printf("Genome:    %s\n", genome)
	fmt.Printf("Seed:      %d\n", s)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("Lines:     %d\n", res.Lines)
	fmt.Printf("Pieces:    %d\n", res.Pieces)
	fmt.Printf("Game over: %v\n", res.GameOver)
}
