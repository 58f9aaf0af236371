package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrRunNotFound is returned when a training run ID is unknown.
var ErrRunNotFound = errors.New("storage: training run not found")

// Run is one training session.
type Run struct {
	ID          ulid.ULID
	Seed        int64
	Population  int
	Generations int
	StartedAt   time.Time
}

// Result is one evaluated individual of one generation.
type Result struct {
	RunID      ulid.ULID
	Generation int
	Individual int
	Genes      [4]uint8 // line, height_max, height_diff, dead_space
	Fitness    int
}

// CreateRun registers a new training run and returns it with a fresh ID.
func (s *Store) CreateRun(seed int64, population, generations int) (Run, error) {
	run := Run{
		ID:          ulid.Make(),
		Seed:        seed,
		Population:  population,
		Generations: generations,
		StartedAt:   time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO training_runs (id, seed, population, generations, started_at)
		 VALUES (?, ?, ?, ?, ?)`,
		run.ID.String(), run.Seed, run.Population, run.Generations,
		run.StartedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot create training run: %w", err)
	}
	return run, nil
}

// SaveGeneration stores every individual of one generation in a single
// transaction.
func (s *Store) SaveGeneration(results []Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO training_results
		 (run_id, generation, individual, gene_line, gene_height_max, gene_height_diff, gene_dead_space, fitness)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.Exec(
			r.RunID.String(), r.Generation, r.Individual,
			r.Genes[0], r.Genes[1], r.Genes[2], r.Genes[3],
			r.Fitness,
		); err != nil {
			return fmt.Errorf("storage: cannot save training result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit generation: %w", err)
	}
	return nil
}

// Runs lists training runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, population, generations, started_at
		 FROM training_runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query training runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID looks up one training run.
func (s *Store) RunByID(id ulid.ULID) (Run, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, population, generations, started_at
		 FROM training_runs
		 WHERE id = ?`,
		id.String(),
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	return run, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var id string
	var startedAt any
	if err := row.Scan(&id, &run.Seed, &run.Population, &run.Generations, &startedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("storage: cannot scan training run: %w", err)
	}
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return Run{}, fmt.Errorf("storage: invalid run id %q: %w", id, err)
	}
	run.ID = parsed
	run.StartedAt = parseTime(startedAt)
	return run, nil
}

// Results returns every stored individual of a run, ordered by generation
// and slot.
func (s *Store) Results(runID ulid.ULID) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT generation, individual, gene_line, gene_height_max, gene_height_diff, gene_dead_space, fitness
		 FROM training_results
		 WHERE run_id = ?
		 ORDER BY generation, individual`,
		runID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query training results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r := Result{RunID: runID}
		if err := rows.Scan(
			&r.Generation, &r.Individual,
			&r.Genes[0], &r.Genes[1], &r.Genes[2], &r.Genes[3],
			&r.Fitness,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan training result: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
