package treestore

import (
	"context"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"github.com/kh11kim/rrt/logging"
	"github.com/kh11kim/rrt/motionplan"
)

func solve(t *testing.T, iter int) *motionplan.Solution {
	t.Helper()
	limits := []motionplan.Limit{{Min: -1, Max: 1}, {Min: -1, Max: 1}}
	sampler, err := motionplan.NewUniformSampler(limits, nil)
	test.That(t, err, test.ShouldBeNil)
	// a wall open at the top
	checker := motionplan.CollisionCheckerFunc(func(c motionplan.Config) bool {
		return c.Q[0] > -0.1 && c.Q[0] < 0.1 && c.Q[1] < 0.5
	})
	opt := motionplan.NewBasicPlannerOptions()
	opt.PlanIter = iter
	mp, err := motionplan.NewBiRRTMotionPlanner(checker, sampler, opt, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	sol, err := mp.Solve(context.Background(), motionplan.NewConfig(-0.5, 0), motionplan.NewConfig(0.5, 0))
	test.That(t, err, test.ShouldBeNil)
	return sol
}

func openStore(t *testing.T, dsn string) *Store {
	t.Helper()
	store, err := Open(context.Background(), dsn)
	test.That(t, err, test.ShouldBeNil)
	t.Cleanup(func() {
		test.That(t, store.Close(), test.ShouldBeNil)
	})
	return store
}

func TestEncodeConfig(t *testing.T) {
	q := []float64{0, -1.5, 3.25e10, 1e-300}
	decoded, err := decodeConfig(encodeConfig(q))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, decoded, test.ShouldResemble, q)

	_, err = decodeConfig([]byte{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, ":memory:")
	sol := solve(t, 5000)
	test.That(t, sol.Found(), test.ShouldBeTrue)

	runID, err := store.SaveSolution(ctx, sol)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, runID, test.ShouldNotEqual, "")

	run, err := store.Run(ctx, runID)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, run.ID, test.ShouldEqual, runID)
	test.That(t, run.Dim, test.ShouldEqual, 2)
	test.That(t, run.Iterations, test.ShouldEqual, sol.Iterations)
	test.That(t, run.Elapsed, test.ShouldEqual, sol.Elapsed)
	test.That(t, run.PathLen, test.ShouldEqual, len(sol.Path))

	for which, want := range map[Which]*motionplan.Tree{StartTree: sol.StartTree, GoalTree: sol.GoalTree} {
		tree, err := store.LoadTree(ctx, runID, which)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, tree.Size(), test.ShouldEqual, want.Size())
		test.That(t, tree.Parents(), test.ShouldResemble, want.Parents())
		test.That(t, motionplan.ConfigsToFloats(tree.Nodes()), test.ShouldResemble, motionplan.ConfigsToFloats(want.Nodes()))
	}

	path, err := store.LoadPath(ctx, runID)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, motionplan.ConfigsToFloats(path), test.ShouldResemble, motionplan.ConfigsToFloats(sol.Path))

	// a rebuilt tree answers queries like the original
	tree, err := store.LoadTree(ctx, runID, StartTree, motionplan.WithKDTreeIndex())
	test.That(t, err, test.ShouldBeNil)
	query := motionplan.NewConfig(0.3, 0.9)
	test.That(t, tree.Nearest(query), test.ShouldEqual, sol.StartTree.Nearest(query))
}

func TestSaveNoPath(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, ":memory:")
	sol := solve(t, 0)
	test.That(t, sol.Found(), test.ShouldBeFalse)

	runID, err := store.SaveSolution(ctx, sol)
	test.That(t, err, test.ShouldBeNil)
	path, err := store.LoadPath(ctx, runID)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path, test.ShouldBeEmpty)

	tree, err := store.LoadTree(ctx, runID, GoalTree)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree.Size(), test.ShouldEqual, 1)
	test.That(t, tree.Config(tree.Root()).Q, test.ShouldResemble, []float64{0.5, 0})

	_, err = store.SaveSolution(ctx, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRunsPersistAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(ctx, dsn)
	test.That(t, err, test.ShouldBeNil)
	first, err := store.SaveSolution(ctx, solve(t, 0))
	test.That(t, err, test.ShouldBeNil)
	second, err := store.SaveSolution(ctx, solve(t, 5000))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, store.Close(), test.ShouldBeNil)

	store = openStore(t, dsn)
	runs, err := store.Runs(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, runs, test.ShouldHaveLength, 2)
	test.That(t, runs[0].ID, test.ShouldEqual, first)
	test.That(t, runs[1].ID, test.ShouldEqual, second)
	test.That(t, runs[0].PathLen, test.ShouldEqual, 0)
	test.That(t, runs[1].PathLen, test.ShouldBeGreaterThan, 0)
}

func TestUnknownRun(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, ":memory:")

	_, err := store.Run(ctx, "nope")
	test.That(t, err, test.ShouldWrap, ErrRunNotFound)
	_, err = store.LoadPath(ctx, "nope")
	test.That(t, err, test.ShouldWrap, ErrRunNotFound)
	_, err = store.LoadTree(ctx, "nope", StartTree)
	test.That(t, err, test.ShouldWrap, ErrRunNotFound)

	runs, err := store.Runs(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, runs, test.ShouldBeEmpty)
}
