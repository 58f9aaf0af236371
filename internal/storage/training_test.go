package storage

import (
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestCreateRunAndLookup(t *testing.T) {
	store := openTestStore(t)

	run, err := store.CreateRun(42, 10, 5)
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}
	got, err := store.RunByID(run.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.ID != run.ID || got.Seed != 42 || got.Population != 10 || got.Generations != 5 {
		t.Errorf("RunByID = %+v, want %+v", got, run)
	}
	if got.StartedAt.IsZero() {
		t.Error("start time not stored")
	}

	if _, err := store.RunByID(ulid.Make()); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("unknown run error = %v, want ErrRunNotFound", err)
	}
}

func TestRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	var ids []ulid.ULID
	for i := 0; i < 3; i++ {
		run, err := store.CreateRun(int64(i), 10, 10)
		if err != nil {
			t.Fatalf("CreateRun() failed: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := store.Runs(0)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Runs() returned %d, want 3", len(runs))
	}
	for i, run := range runs {
		if want := ids[len(ids)-1-i]; run.ID != want {
			t.Errorf("position %d = %s, want %s", i, run.ID, want)
		}
	}
}

func TestSaveGenerationAndResults(t *testing.T) {
	store := openTestStore(t)

	run, err := store.CreateRun(7, 2, 2)
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}
	other, err := store.CreateRun(8, 2, 2)
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}

	gen2 := []Result{
		{RunID: run.ID, Generation: 2, Individual: 1, Genes: [4]uint8{9, 9, 9, 9}, Fitness: 3},
		{RunID: run.ID, Generation: 2, Individual: 0, Genes: [4]uint8{255, 0, 1, 2}, Fitness: 140},
	}
	gen1 := []Result{
		{RunID: run.ID, Generation: 1, Individual: 0, Genes: [4]uint8{100, 1, 10, 100}, Fitness: 25},
		{RunID: run.ID, Generation: 1, Individual: 1, Genes: [4]uint8{0, 0, 0, 0}, Fitness: 0},
	}
	for _, gen := range [][]Result{gen2, gen1} {
		if err := store.SaveGeneration(gen); err != nil {
			t.Fatalf("SaveGeneration() failed: %v", err)
		}
	}
	if err := store.SaveGeneration([]Result{{RunID: other.ID, Generation: 1}}); err != nil {
		t.Fatalf("SaveGeneration() failed: %v", err)
	}

	got, err := store.Results(run.ID)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	want := []Result{gen1[0], gen1[1], gen2[1], gen2[0]}
	if len(got) != len(want) {
		t.Fatalf("Results() returned %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
