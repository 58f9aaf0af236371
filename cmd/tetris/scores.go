package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresTable bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [normal|auto]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode. Player games are recorded as
"normal", AI games as "auto".

Examples:
  tetris scores
  tetris scores auto
  tetris scores --tui
  tetris scores auto --clear`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{storage.ModeNormal, storage.ModeAuto},
	Run:       runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTable, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := storage.ModeNormal
	if len(args) == 1 {
		mode = args[0]
	}
	if mode != storage.ModeNormal && mode != storage.ModeAuto {
		fatal("unknown mode %q (want %s or %s)", mode, storage.ModeNormal, storage.ModeAuto)
	}

	store := openStore(true)
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared %s scores.\n", mode)
		return
	}

	if flagScoresTable {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, mode, cfg.ScreenW, cfg.ScreenH); err != nil {
			fatal("%v", err)
		}
		return
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "Rank", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  %s\n", i+1, entry.Score, entry.Lines, dateStr)
	}
}
