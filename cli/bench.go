package cli

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kh11kim/rrt/config"
	"github.com/kh11kim/rrt/logging"
	"github.com/kh11kim/rrt/motionplan"
)

const (
	benchFlagRuns     = "runs"
	benchFlagParallel = "parallel"
)

type benchResult struct {
	seed       int64
	found      bool
	iterations int
	nodes      int
	length     float64
	elapsed    time.Duration
}

// BenchAction plans the same problem with consecutive seeds and summarizes how the planner did.
func BenchAction(c *cli.Context) error {
	logger, closeLog := newLogger(c)
	defer closeLog()
	problem, err := config.Read(c.Path(planFlagProblem))
	if err != nil {
		return err
	}
	if c.IsSet(planFlagMaxIter) {
		problem.Planner.PlanIter = c.Int(planFlagMaxIter)
	}
	runs := c.Int(benchFlagRuns)
	if runs <= 0 {
		return errors.Errorf("--%s must be positive, got %d", benchFlagRuns, runs)
	}

	results := make([]benchResult, runs)
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(max(1, c.Int(benchFlagParallel)))
	for i := range results {
		// every run gets its own sampler, so runs do not share random state
		seeded := *problem
		seeded.Seed = problem.Seed + int64(i)
		opt := *problem.Planner
		seeded.Planner = &opt
		g.Go(func() error {
			name := fmt.Sprintf("seed%d", seeded.Seed)
			runLogger := logger.Sublogger(name)
			setup, err := seeded.Build(runLogger)
			if err != nil {
				return err
			}
			runCtx := logging.WithSession(ctx, name)
			if c.Bool(generalFlagDebug) {
				runCtx = logging.EnableDebugMode(ctx, name)
			}
			sol, err := setup.Planner.Solve(runCtx, setup.Start, setup.Goal)
			if err != nil {
				return errors.Wrapf(err, "seed %d", seeded.Seed)
			}
			runLogger.CInfow(runCtx, "bench run finished",
				"found", sol.Found(),
				"iterations", sol.Iterations,
			)
			results[i] = benchResult{
				seed:       seeded.Seed,
				found:      sol.Found(),
				iterations: sol.Iterations,
				nodes:      sol.StartTree.Size() + sol.GoalTree.Size(),
				length:     motionplan.PathLength(sol.Path),
				elapsed:    sol.Elapsed,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Seed", "Found", "Iterations", "Nodes", "Path length", "Elapsed"})
	var iterations, lengths []float64
	for _, r := range results {
		t.AppendRow(table.Row{r.seed, r.found, r.iterations, r.nodes, fmt.Sprintf("%.3f", r.length), r.elapsed.Round(time.Microsecond)})
		if r.found {
			iterations = append(iterations, float64(r.iterations))
			lengths = append(lengths, r.length)
		}
	}
	printf(c.App.Writer, "%s", t.Render())
	printf(c.App.Writer, "found %d/%d", len(iterations), runs)
	if len(iterations) == 0 {
		return nil
	}

	meanIter, err := stats.Mean(iterations)
	if err != nil {
		return err
	}
	medianIter, err := stats.Median(iterations)
	if err != nil {
		return err
	}
	meanLength, err := stats.Mean(lengths)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "iterations: mean %.1f, median %.1f", meanIter, medianIter)
	printf(c.App.Writer, "path length: mean %.3f", meanLength)
	return nil
}
