// Package archive persists imported task sets and solved results in a
// sqlite database. Search history is never stored, only the solutions
// a run produced: task id, run id, depth, attempts, elapsed time and
// the rendered solver code.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gridmind/gridil/internal/ctxlog"
	"github.com/gridmind/gridil/internal/taskset"
)

// ErrNotFound reports a task id the archive has never imported.
var ErrNotFound = errors.New("archive: task not found")

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id     TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	doc    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS solutions (
	task_id    TEXT NOT NULL,
	run_id     TEXT NOT NULL,
	depth      INTEGER NOT NULL,
	attempts   INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	code       TEXT NOT NULL,
	solved_at  INTEGER NOT NULL,
	PRIMARY KEY (task_id, run_id)
);`

// Archive is an open solution database.
type Archive struct {
	db *sql.DB
}

// Solution is one solved task within a run.
type Solution struct {
	TaskID   string
	RunID    uuid.UUID
	Depth    int
	Attempts int
	Elapsed  time.Duration
	Code     string
	SolvedAt time.Time
}

// NewRunID mints the identifier shared by every solution of one run.
func NewRunID() uuid.UUID { return uuid.New() }

// Open opens or creates the database at path.
func Open(ctx context.Context, path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: opening %s: %w", path, err)
	}
	// sqlite allows one writer; a single connection avoids busy errors
	// when batch runs record solutions while importing.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: preparing %s: %w", path, err)
	}
	return &Archive{db: db}, nil
}

// Close releases the database.
func (a *Archive) Close() error { return a.db.Close() }

// ImportTasks stores every task under the given source label,
// replacing tasks already imported under the same id.
func (a *Archive) ImportTasks(ctx context.Context, source string, tasks []*taskset.Task) (int, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("archive: %w", err)
	}
	defer tx.Rollback()

	for _, t := range tasks {
		doc, err := json.Marshal(t)
		if err != nil {
			return 0, fmt.Errorf("archive: encoding %s: %w", t.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO tasks (id, source, doc) VALUES (?, ?, ?)`,
			t.ID, source, string(doc))
		if err != nil {
			return 0, fmt.Errorf("archive: importing %s: %w", t.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("archive: %w", err)
	}
	ctxlog.From(ctx).Debug("archive: imported task set", "source", source, "count", len(tasks))
	return len(tasks), nil
}

// Task loads one imported task. The stored document goes back through
// task validation, so a corrupted row cannot reach the solver.
func (a *Archive) Task(ctx context.Context, id string) (*taskset.Task, error) {
	var doc string
	err := a.db.QueryRowContext(ctx, `SELECT doc FROM tasks WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return taskset.Parse(id, []byte(doc))
}

// TaskIDs lists every imported task id in order.
func (a *Archive) TaskIDs(ctx context.Context) ([]string, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT id FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SaveSolution records one solved task, replacing an earlier record of
// the same task in the same run.
func (a *Archive) SaveSolution(ctx context.Context, sol Solution) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO solutions
			(task_id, run_id, depth, attempts, elapsed_ns, code, solved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sol.TaskID, sol.RunID.String(), sol.Depth, sol.Attempts,
		sol.Elapsed.Nanoseconds(), sol.Code, sol.SolvedAt.UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("archive: recording %s: %w", sol.TaskID, err)
	}
	ctxlog.From(ctx).Debug("archive: recorded solution",
		"task", sol.TaskID, "run", sol.RunID, "depth", sol.Depth)
	return nil
}

// Solutions lists the recorded solutions of one task, oldest first.
func (a *Archive) Solutions(ctx context.Context, taskID string) ([]Solution, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT task_id, run_id, depth, attempts, elapsed_ns, code, solved_at
			FROM solutions WHERE task_id = ? ORDER BY solved_at, run_id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	defer rows.Close()
	return scanSolutions(rows)
}

// AllSolutions lists every recorded solution, grouped by task.
func (a *Archive) AllSolutions(ctx context.Context) ([]Solution, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT task_id, run_id, depth, attempts, elapsed_ns, code, solved_at
			FROM solutions ORDER BY task_id, solved_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	defer rows.Close()
	return scanSolutions(rows)
}

func scanSolutions(rows *sql.Rows) ([]Solution, error) {
	var out []Solution
	for rows.Next() {
		var (
			sol      Solution
			runID    string
			elapsed  int64
			solvedAt int64
		)
		err := rows.Scan(&sol.TaskID, &runID, &sol.Depth, &sol.Attempts,
			&elapsed, &sol.Code, &solvedAt)
		if err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}
		id, err := uuid.Parse(runID)
		if err != nil {
			return nil, fmt.Errorf("archive: run id %q: %w", runID, err)
		}
		sol.RunID = id
		sol.Elapsed = time.Duration(elapsed)
		sol.SolvedAt = time.Unix(0, solvedAt).UTC()
		out = append(out, sol)
	}
	return out, rows.Err()
}
