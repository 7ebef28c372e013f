package cache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sugawarayuuta/sonnet"

	"word-cliques/internal/index"
)

// RunAnswer is one expanded answer set as stored with a run record.
type RunAnswer struct {
	Masks     []index.Mask `json:"masks"`
	Tuples    [][]string   `json:"tuples"`
	Ambiguous bool         `json:"ambiguous"`
}

// Run records one completed search: its parameters, fingerprint, timing
// and the full expanded answer collection.
type Run struct {
	ID          string        `json:"id"`
	Fingerprint string        `json:"fingerprint"`
	WordLength  int           `json:"word_length"`
	WordCount   int           `json:"word_count"`
	Duration    time.Duration `json:"duration"`
	Answers     []RunAnswer   `json:"answers,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// SaveRun persists a finished run and returns its generated id.
func (s *Store) SaveRun(run Run) (string, error) {
	id := run.ID
	if id == "" {
		id = uuid.New().String()
	}

	blob, err := sonnet.Marshal(run.Answers)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run answers: %w", err)
	}

	if _, err := s.db.Exec(
		`INSERT INTO runs (id, fingerprint, word_length, word_count, duration_ms, answers)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, run.Fingerprint, run.WordLength, run.WordCount, run.Duration.Milliseconds(), blob,
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	return id, nil
}

// ListRuns returns all recorded runs, newest first, without their answer
// payloads.
func (s *Store) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, fingerprint, word_length, word_count, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			durationMS int64
		)
		if err := rows.Scan(&run.ID, &run.Fingerprint, &run.WordLength, &run.WordCount,
			&durationMS, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return runs, nil
}

// GetRun fetches one run with its answers. It returns nil when the id is
// unknown.
func (s *Store) GetRun(id string) (*Run, error) {
	var (
		run        Run
		durationMS int64
		blob       []byte
	)
	err := s.db.QueryRow(
		`SELECT id, fingerprint, word_length, word_count, duration_ms, answers, created_at
		 FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.Fingerprint, &run.WordLength, &run.WordCount, &durationMS, &blob, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	run.Duration = time.Duration(durationMS) * time.Millisecond
	if err := sonnet.Unmarshal(blob, &run.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run answers: %w", err)
	}
	return &run, nil
}

// CountRuns returns the number of recorded runs.
func (s *Store) CountRuns() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}
