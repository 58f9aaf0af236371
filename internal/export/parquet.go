// Package export writes training history to Parquet files for offline
// analysis.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// schemaVersion is stored in the file metadata.
const schemaVersion = "training_result_v1"

// TrainingRow is one evaluated individual.
type TrainingRow struct {
	RunID          string `parquet:"run_id,dict"`
	Generation     int32  `parquet:"generation"`
	Individual     int32  `parquet:"individual"`
	GeneLine       int32  `parquet:"gene_line"`
	GeneHeightMax  int32  `parquet:"gene_height_max"`
	GeneHeightDiff int32  `parquet:"gene_height_diff"`
	GeneDeadSpace  int32  `parquet:"gene_dead_space"`
	Fitness        int64  `parquet:"fitness"`
}

// RowsFromResults converts stored results to export rows, keeping order.
func RowsFromResults(results []storage.Result) []TrainingRow {
	rows := make([]TrainingRow, len(results))
	for i, r := range results {
		rows[i] = TrainingRow{
			RunID:          r.RunID.String(),
			Generation:     int32(r.Generation),
			Individual:     int32(r.Individual),
			GeneLine:       int32(r.Genes[0]),
			GeneHeightMax:  int32(r.Genes[1]),
			GeneHeightDiff: int32(r.Genes[2]),
			GeneDeadSpace:  int32(r.Genes[3]),
			Fitness:        int64(r.Fitness),
		}
	}
	return rows
}

// WriteTrainingParquet writes rows to outPath, replacing any existing file.
// The data goes to a temp file first and is renamed into place.
func WriteTrainingParquet(outPath string, rows []TrainingRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schemaVersion),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export: rename parquet: %w", err)
	}
	return nil
}

// ReadTrainingParquet loads rows written by WriteTrainingParquet.
func ReadTrainingParquet(path string) ([]TrainingRow, error) {
	rows, err := parquet.ReadFile[TrainingRow](path)
	if err != nil {
		return nil, fmt.Errorf("export: read parquet: %w", err)
	}
	return rows, nil
}
