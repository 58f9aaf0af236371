package main

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a training run to Parquet",
	Long: `Write every evaluated individual of a training run to a Parquet
file (zstd compressed), one row per individual per generation.

Examples:
  tetris runs
  tetris export 01JABCDEF0123456789ABCDEFG --out run.parquet`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output Parquet file (default <run-id>.parquet)")
}

func runExport(_ *cobra.Command, args []string) {
	id, err := ulid.ParseStrict(args[0])
	if err != nil {
		fatal("invalid run id %q: %v", args[0], err)
	}

	store := openStore(true)
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		fatal("%v", err)
	}

	out := flagExportOut
	if out == "" {
		out = run.ID.String() + ".parquet"
	}
	if err := exportRun(store, run, out); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Wrote run %s to %s\n", run.ID, out)
}
