package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List training runs",
	Long: `List recent training runs, newest first, with the best genome each
one found.

Examples:
  tetris runs
  tetris runs --limit 50`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) {
	store := openStore(true)
	defer store.Close()

	runs, err := store.Runs(flagRunsLimit)
	if err != nil {
		fatal("%v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No training runs yet. Start one with 'tetris learn'.")
		return
	}

	fmt.Printf("%-26s  %-16s  %-4s  %-4s  %-18s  %s\n", "ID", "Started", "Pop", "Gens", "Best genome", "Score")
	for _, run := range runs {
		results, err := store.Results(run.ID)
		if err != nil {
			fatal("%v", err)
		}

		best, score := "-", "-"
		if len(results) > 0 {
			top := results[0]
			for _, r := range results[1:] {
				if r.Fitness > top.Fitness {
					top = r
				}
			}
			best, score = ai.Genome(top.Genes).String(), fmt.Sprint(top.Fitness)
		}
		fmt.Printf("%-26s  %-16s  %-4d  %-4d  %-18s  %s\n",
			run.ID, run.StartedAt.Format("2006-01-02 15:04"), run.Population, run.Generations, best, score)
	}
}
