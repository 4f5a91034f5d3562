// Package results persists finished simulation reports so runs can be
// compared later. Match state itself is never stored.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/sim"
)

// Run is a stored simulation report.
type Run struct {
	*sim.Report
	CreatedAt time.Time `json:"createdAt"`
}

const maxRecent = 200

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database at dsn and applies pending migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveRun inserts the report and its per-match outcomes atomically.
func (s *Store) SaveRun(ctx context.Context, r *sim.Report) error {
	if r == nil || r.ID == "" {
		return errors.New("results: report has no id")
	}
	dist, err := json.Marshal(r.Distribution)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO runs
            (id, solver, seed, max_guesses, games, wins, losses, failed,
             win_rate, mean_guesses, stddev_guesses, distribution, elapsed_ms, created_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		r.ID, r.Solver, int64(r.Seed), r.MaxGuesses, r.Games, r.Wins, r.Losses, r.Failed,
		r.WinRate, r.MeanGuesses, r.StdDevGuesses, string(dist), r.Elapsed.Milliseconds(),
		s.now().UnixNano(),
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO outcomes (run_id, idx, target, won, guesses, words, error)
        VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, o := range r.Outcomes {
		var errText sql.NullString
		if o.Err != nil {
			errText = sql.NullString{String: o.Err.Error(), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, r.ID, o.Index, o.Target, o.Won, o.Guesses,
			strings.Join(o.Words, ","), errText); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Recent returns the latest runs, newest first, without outcomes.
// limit defaults to 20 and is capped at maxRecent.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	limit = min(limit, maxRecent)
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, solver, seed, max_guesses, games, wins, losses, failed,
               win_rate, mean_guesses, stddev_guesses, distribution, elapsed_ms, created_at
        FROM runs
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var (
			r       sim.Report
			seed    int64
			dist    string
			elapsed int64
			created int64
		)
		if err := rows.Scan(&r.ID, &r.Solver, &seed, &r.MaxGuesses, &r.Games, &r.Wins, &r.Losses,
			&r.Failed, &r.WinRate, &r.MeanGuesses, &r.StdDevGuesses, &dist, &elapsed, &created); err != nil {
			return nil, err
		}
		r.Seed = uint64(seed)
		r.Elapsed = time.Duration(elapsed) * time.Millisecond
		if err := json.Unmarshal([]byte(dist), &r.Distribution); err != nil {
			return nil, err
		}
		out = append(out, Run{Report: &r, CreatedAt: time.Unix(0, created).UTC()})
	}
	return out, rows.Err()
}

// Outcomes loads the per-match outcomes of one run in match order.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]sim.Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT idx, target, won, guesses, words, error
        FROM outcomes WHERE run_id=? ORDER BY idx`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []sim.Outcome
	for rows.Next() {
		var (
			o       sim.Outcome
			ws      string
			errText sql.NullString
		)
		if err := rows.Scan(&o.Index, &o.Target, &o.Won, &o.Guesses, &ws, &errText); err != nil {
			return nil, err
		}
		if ws != "" {
			o.Words = strings.Split(ws, ",")
		}
		if errText.Valid {
			o.Err = errors.New(errText.String)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
