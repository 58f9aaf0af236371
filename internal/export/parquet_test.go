package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestWriteAndReadTrainingParquet(t *testing.T) {
	id := ulid.Make()
	results := []storage.Result{
		{RunID: id, Generation: 1, Individual: 0, Genes: [4]uint8{100, 1, 10, 100}, Fitness: 25},
		{RunID: id, Generation: 1, Individual: 1, Genes: [4]uint8{255, 0, 3, 7}, Fitness: 1400},
	}
	rows := RowsFromResults(results)
	if rows[1].GeneLine != 255 || rows[1].Fitness != 1400 || rows[0].RunID != id.String() {
		t.Fatalf("RowsFromResults = %+v", rows)
	}

	path := filepath.Join(t.TempDir(), "out", "training.parquet")
	if err := WriteTrainingParquet(path, rows); err != nil {
		t.Fatalf("WriteTrainingParquet: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	got, err := ReadTrainingParquet(path)
	if err != nil {
		t.Fatalf("ReadTrainingParquet: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("read %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], rows[i])
		}
	}
}

func TestWriteTrainingParquetReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training.parquet")
	first := []TrainingRow{{RunID: "a", Generation: 1}, {RunID: "a", Generation: 2}}
	if err := WriteTrainingParquet(path, first); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteTrainingParquet(path, first[:1]); err != nil {
		t.Fatalf("second write: %v", err)
	}
	got, err := ReadTrainingParquet(path)
	if err != nil {
		t.Fatalf("ReadTrainingParquet: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("read %d rows, want 1", len(got))
	}
}
