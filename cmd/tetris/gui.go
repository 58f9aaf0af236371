package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
)

var flagGUIAuto bool

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Open a window and play with the same controls as the terminal.

Examples:
  tetris gui
  tetris gui --auto --genome 100,1,10,100`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().BoolVar(&flagGUIAuto, "auto", false, "Let the AI play")
	guiCmd.Flags().StringVar(&flagGenome, "genome", "", "AI weights for --auto (default from config)")
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(false)
	if store != nil {
		defer store.Close()
	}

	err := gui.Run(gui.Options{
		Auto:   flagGUIAuto,
		Seed:   flagSeed,
		Config: cfg,
		Genome: genomeFor(cfg),
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		fatal("%v", err)
	}
}
