// Package treestore persists finished planning runs, both search trees and the resulting path, in
// a SQLite database so they can be inspected later.
package treestore

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/kh11kim/rrt/motionplan"
)

// Which names one of the two trees of a run.
type Which string

// The trees of a run.
const (
	StartTree Which = "start"
	GoalTree  Which = "goal"
)

// ErrRunNotFound is returned when a run id is not in the store.
var ErrRunNotFound = errors.New("run not found")

// Run summarizes a stored planning run.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Dim        int
	Iterations int
	Elapsed    time.Duration
	PathLen    int
}

// Store is a SQLite backed store of planning runs.
type Store struct {
	db *sql.DB
}

// Open opens the database at dsn, for example a file path or ":memory:", and ensures the schema
// exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open tree store %q", dsn)
	}
	// every connection to ":memory:" is its own database
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, multierr.Combine(errors.Wrap(err, "failed to create tree store schema"), db.Close())
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSolution stores both trees and the path of a solution in one transaction and returns the
// id of the new run.
func (s *Store) SaveSolution(ctx context.Context, sol *motionplan.Solution) (string, error) {
	if sol == nil || sol.StartTree == nil || sol.GoalTree == nil {
		return "", errors.New("cannot save a solution without trees")
	}
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, created_at, dim, iterations, elapsed_ns, path_len) VALUES(?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UnixNano(), sol.StartTree.Dim(), sol.Iterations, int64(sol.Elapsed), len(sol.Path),
	); err != nil {
		return "", errors.Wrap(err, "failed to insert run")
	}

	nodeStmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes(run_id, tree, node_id, parent_id, q) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer nodeStmt.Close()
	for which, tree := range map[Which]*motionplan.Tree{StartTree: sol.StartTree, GoalTree: sol.GoalTree} {
		parents := tree.Parents()
		for id, c := range tree.Nodes() {
			if _, err := nodeStmt.ExecContext(ctx, runID, string(which), id, int(parents[id]), encodeConfig(c.Q)); err != nil {
				return "", errors.Wrapf(err, "failed to insert %s tree node %d", which, id)
			}
		}
	}

	pathStmt, err := tx.PrepareContext(ctx, `INSERT INTO path(run_id, seq, q) VALUES(?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer pathStmt.Close()
	for seq, c := range sol.Path {
		if _, err := pathStmt.ExecContext(ctx, runID, seq, encodeConfig(c.Q)); err != nil {
			return "", errors.Wrapf(err, "failed to insert path element %d", seq)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// Run returns the summary of one run.
func (s *Store) Run(ctx context.Context, runID string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, dim, iterations, elapsed_ns, path_len FROM runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, errors.Wrapf(ErrRunNotFound, "run %q", runID)
	}
	return run, err
}

// Runs lists every stored run, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, dim, iterations, elapsed_ns, path_len FROM runs ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run       Run
		createdAt int64
		elapsed   int64
	)
	if err := row.Scan(&run.ID, &createdAt, &run.Dim, &run.Iterations, &elapsed, &run.PathLen); err != nil {
		return Run{}, err
	}
	run.CreatedAt = time.Unix(0, createdAt)
	run.Elapsed = time.Duration(elapsed)
	return run, nil
}

// LoadTree rebuilds one of the trees of a run. Node handles and parent links are the same as
// when the run was saved.
func (s *Store) LoadTree(ctx context.Context, runID string, which Which, opts ...motionplan.TreeOption) (*motionplan.Tree, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT node_id, parent_id, q FROM nodes WHERE run_id = ? AND tree = ? ORDER BY node_id`, runID, string(which))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tree *motionplan.Tree
	for rows.Next() {
		var (
			id, parent int
			blob       []byte
		)
		if err := rows.Scan(&id, &parent, &blob); err != nil {
			return nil, err
		}
		q, err := decodeConfig(blob)
		if err != nil {
			return nil, errors.Wrapf(err, "%s tree node %d", which, id)
		}
		if tree == nil {
			if id != 0 || motionplan.NodeID(parent) != motionplan.NoNode {
				return nil, errors.Errorf("%s tree of run %q does not start at its root", which, runID)
			}
			tree = motionplan.NewTree(motionplan.Config{Q: q}, opts...)
			continue
		}
		added, err := tree.AddNode(motionplan.Config{Q: q}, motionplan.NodeID(parent))
		if err != nil {
			return nil, errors.Wrapf(err, "%s tree node %d", which, id)
		}
		if int(added) != id {
			return nil, errors.Errorf("%s tree of run %q is missing node %d", which, runID, added)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, errors.Wrapf(ErrRunNotFound, "no %s tree for run %q", which, runID)
	}
	return tree, nil
}

// LoadPath returns the stored path of a run. It is empty when the run found no path.
func (s *Store) LoadPath(ctx context.Context, runID string) ([]motionplan.Config, error) {
	if _, err := s.Run(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT q FROM path WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	path := []motionplan.Config{}
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		q, err := decodeConfig(blob)
		if err != nil {
			return nil, errors.Wrapf(err, "path element %d", len(path))
		}
		path = append(path, motionplan.Config{Q: q})
	}
	return path, rows.Err()
}
