package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  tetris menu
  tetris menu --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(false)
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()
	genome := genomeFor(cfg)
	scoresMode := storage.ModeNormal

	for {
		res, err := tui.RunMenu(rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rc = res.Config

		switch res.Choice {
		case tui.ChoicePlay, tui.ChoiceAuto:
			mode := tui.ModePlay
			if res.Choice == tui.ChoiceAuto {
				mode = tui.ModeAuto
			}
			err := tui.Run(tui.Options{
				Mode:     mode,
				Seed:     flagSeed,
				Config:   cfg,
				Genome:   genome,
				Store:    store,
				Logger:   logger,
				TickRate: flagFPS,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			scoresMode = mode.String()

		case tui.ChoiceLearn:
			flagLearnHeadless = false
			runLearn(nil, nil)

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, scoresMode, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
