package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/export"
	"github.com/vovakirdan/tui-tetris/internal/ga"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLearnHeadless bool
	flagLearnExport   string
	flagPopulation    int
	flagGenerations   int
	flagLearnLines    int
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Train AI weights with a genetic optimizer",
	Long: `Run the genetic optimizer. Every generation plays one game per
individual in parallel; the next population is built from crossover,
mutation and the fittest survivors.

Every evaluated individual is stored in the database, so a run can be
listed with 'tetris runs' and exported later with 'tetris export'.

Press Q to stop. Stopping ends the process at once; generations already
finished stay saved.

Examples:
  tetris learn
  tetris learn --population 20 --generations 30 --seed 7
  tetris learn --headless --export run.parquet`,
	Args: cobra.NoArgs,
	Run:  runLearn,
}

func init() {
	learnCmd.Flags().BoolVar(&flagLearnHeadless, "headless", false, "Log progress instead of showing the dashboard")
	learnCmd.Flags().StringVar(&flagLearnExport, "export", "", "Write the run to this Parquet file when done")
	learnCmd.Flags().IntVar(&flagPopulation, "population", 0, "Population size (default from config)")
	learnCmd.Flags().IntVar(&flagGenerations, "generations", 0, "Number of generations (default from config)")
	learnCmd.Flags().IntVar(&flagLearnLines, "lines", 0, "Line cap per game (default from config)")
}

// trainer runs one optimizer and records its generations.
type trainer struct {
	opt    *ga.Optimizer
	store  *storage.Store
	run    storage.Run
	logger *log.Logger
}

// train runs every generation. progress, if set, receives dashboard messages.
func (t *trainer) train(ctx context.Context, progress func(tea.Msg)) (ga.Individual, error) {
	best, err := t.opt.Run(ctx, func(res ga.GenerationResult) {
		if t.store != nil {
			if err := t.store.SaveGeneration(resultsFor(t.run, res)); err != nil {
				t.logger.Error("save generation", "generation", res.Generation, "err", err)
			}
		}
		if progress != nil {
			progress(tui.GenerationMsg(res))
		}
	})
	if err != nil {
		return best, err
	}
	t.logger.Info("training finished", "run", t.run.ID, "best", best.Genome.String(), "score", best.Fitness)

	if flagLearnExport != "" && t.store != nil {
		if err := exportRun(t.store, t.run, flagLearnExport); err != nil {
			return best, err
		}
		t.logger.Info("exported run", "path", flagLearnExport)
	}
	return best, nil
}

// resultsFor converts a generation to database rows.
func resultsFor(run storage.Run, res ga.GenerationResult) []storage.Result {
	out := make([]storage.Result, len(res.Individuals))
	for i, ind := range res.Individuals {
		out[i] = storage.Result{
			RunID:      run.ID,
			Generation: res.Generation,
			Individual: i,
			Genes:      ind.Genome,
			Fitness:    ind.Fitness,
		}
	}
	return out
}

func runLearn(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	tc := cfg.Training
	if flagPopulation > 0 {
		tc.Population = flagPopulation
	}
	if flagGenerations > 0 {
		tc.Generations = flagGenerations
	}
	if flagLearnLines > 0 {
		tc.LineCap = flagLearnLines
	}

	logger, closeLog := newLogger(flagLearnHeadless)
	defer closeLog()

	s := seed()
	opt, err := ga.New(tc, s, logger)
	if err != nil {
		fatal("%v", err)
	}

	store := openStore(flagLearnExport != "")
	if store != nil {
		defer store.Close()
	}

	t := &trainer{opt: opt, store: store, logger: logger}
	if store != nil {
		run, err := store.CreateRun(s, tc.Population, tc.Generations)
		if err != nil {
			fatal("%v", err)
		}
		t.run = run
	}
	logger.Info("training started", "run", t.run.ID, "seed", s,
		"population", tc.Population, "generations", tc.Generations)

	if flagLearnHeadless {
		runLearnHeadless(t)
		return
	}

	interrupted, err := tui.RunTraining(tc.Generations, tc.Population, func(send func(tea.Msg)) {
		best, err := t.train(context.Background(), send)
		send(tui.TrainingDoneMsg{Best: best, Err: err})
	})
	if err != nil {
		fatal("%v", err)
	}
	if interrupted {
		// Abandon the generation in progress.
		fmt.Fprintln(os.Stderr, "Training stopped.")
		os.Exit(0)
	}
	if t.store != nil {
		fmt.Printf("Run %s saved.\n", t.run.ID)
	}
}

// runLearnHeadless trains on a background goroutine while the foreground
// reads stdin; a line starting with q ends the process.
func runLearnHeadless(t *trainer) {
	type outcome struct {
		best ga.Individual
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		best, err := t.train(context.Background(), nil)
		done <- outcome{best, err}
	}()

	quit := make(chan struct{})
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if strings.HasPrefix(strings.TrimSpace(sc.Text()), "q") {
				close(quit)
				return
			}
		}
	}()

	select {
	case <-quit:
		fmt.Fprintln(os.Stderr, "Training stopped.")
		os.Exit(0)
	case res := <-done:
		if res.err != nil {
			fatal("%v", res.err)
		}
		fmt.Printf("Best genome: %s (score %d)\n", res.best.Genome, res.best.Fitness)
		if t.store != nil {
			fmt.Printf("Run %s saved.\n", t.run.ID)
		}
	}
}

// exportRun writes every stored result of run to a Parquet file.
func exportRun(store *storage.Store, run storage.Run, path string) error {
	results, err := store.Results(run.ID)
	if err != nil {
		return err
	}
	return export.WriteTrainingParquet(path, export.RowsFromResults(results))
}
