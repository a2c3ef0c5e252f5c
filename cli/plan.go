package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/kh11kim/rrt/config"
	"github.com/kh11kim/rrt/logging"
	"github.com/kh11kim/rrt/motionplan"
	"github.com/kh11kim/rrt/treestore"
	"github.com/kh11kim/rrt/viz"
)

type planOutput struct {
	Found      bool        `json:"found"`
	Iterations int         `json:"iterations"`
	ElapsedMS  float64     `json:"elapsed_ms"`
	StartTree  int         `json:"start_tree_size"`
	GoalTree   int         `json:"goal_tree_size"`
	Path       [][]float64 `json:"path"`
	RunID      string      `json:"run_id,omitempty"`
}

// newLogger returns the logger for a command and a function that releases its log file.
func newLogger(c *cli.Context) (logging.Logger, func()) {
	logger := logging.NewLogger("birrt")
	if c.Bool(generalFlagDebug) {
		logger = logging.NewDebugLogger("birrt")
	}
	file := c.Path(generalFlagLogFile)
	if file == "" {
		return logger, func() {}
	}
	appender := logging.NewFileAppender(file)
	logger.AddAppender(appender)
	return logger, func() {
		if err := appender.Close(); err != nil {
			printf(c.App.ErrWriter, "failed to close log file %q: %v", file, err)
		}
	}
}

// PlanAction reads a problem file, plans a path for it and prints the result. Finding no path is
// not an error.
func PlanAction(c *cli.Context) error {
	logger, closeLog := newLogger(c)
	defer closeLog()
	logging.ReplaceGlobal(logger)

	problem, err := config.Read(c.Path(planFlagProblem))
	if err != nil {
		return err
	}
	if c.IsSet(planFlagSeed) {
		problem.Seed = c.Int64(planFlagSeed)
	}
	if c.IsSet(planFlagMaxIter) {
		problem.Planner.PlanIter = c.Int(planFlagMaxIter)
	}

	setup, err := problem.Build(logger.Sublogger("planner"))
	if err != nil {
		return err
	}

	ctx := c.Context
	if c.Bool(generalFlagDebug) {
		ctx = logging.EnableDebugMode(ctx, "")
	}
	sol, err := setup.Planner.Solve(ctx, setup.Start, setup.Goal)
	if err != nil {
		return errors.Wrap(err, "planning failed")
	}

	out := planOutput{
		Found:      sol.Found(),
		Iterations: sol.Iterations,
		ElapsedMS:  float64(sol.Elapsed) / float64(time.Millisecond),
		StartTree:  sol.StartTree.Size(),
		GoalTree:   sol.GoalTree.Size(),
		Path:       motionplan.ConfigsToFloats(sol.Path),
	}

	if dsn := c.String(generalFlagStore); dsn != "" {
		store, err := treestore.Open(ctx, dsn)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warnw("failed to close tree store", "error", err)
			}
		}()
		if out.RunID, err = store.SaveSolution(ctx, sol); err != nil {
			return errors.Wrap(err, "failed to save run")
		}
		logger.Infow("saved run", "run_id", out.RunID, "store", dsn)
	}

	if file := c.Path(planFlagPlot); file != "" {
		if err := viz.Save(sol, setup.Obstacles, file); err != nil {
			return errors.Wrapf(err, "failed to plot run to %q", file)
		}
	}

	if c.Bool(planFlagJSON) {
		return printJSON(c.App.Writer, out)
	}
	if !out.Found {
		printf(c.App.Writer, "no path found after %d iterations", out.Iterations)
		return nil
	}
	printf(c.App.Writer, "found a path of %d configurations after %d iterations (%.3fms)",
		len(out.Path), out.Iterations, out.ElapsedMS)
	printPath(c.App.Writer, sol.Path)
	if out.RunID != "" {
		printf(c.App.Writer, "run id: %s", out.RunID)
	}
	return nil
}

// ListRunsAction prints every run in a store.
func ListRunsAction(c *cli.Context) error {
	store, err := treestore.Open(c.Context, c.String(generalFlagStore))
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	runs, err := store.Runs(c.Context)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Created", "Dim", "Iterations", "Path"})
	for _, run := range runs {
		t.AppendRow(table.Row{run.ID, run.CreatedAt.UTC().Format(time.RFC3339), run.Dim, run.Iterations, run.PathLen})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// SchemaAction prints the JSON schema of problem files.
func SchemaAction(c *cli.Context) error {
	return printJSON(c.App.Writer, config.Schema())
}

// PrintRunPathAction prints the path of a stored run.
func PrintRunPathAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("expected exactly one run id")
	}
	store, err := treestore.Open(c.Context, c.String(generalFlagStore))
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	path, err := store.LoadPath(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	if len(path) == 0 {
		printf(c.App.Writer, "run found no path")
		return nil
	}
	printPath(c.App.Writer, path)
	return nil
}

// printf prints a message with a newline to the given writer.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

func printPath(w io.Writer, path []motionplan.Config) {
	for i, c := range path {
		printf(w, "%d\t%v", i, c)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
