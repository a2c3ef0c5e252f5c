package motionplan

import (
	"context"
	"fmt"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/kh11kim/rrt/logging"
)

type extendStatus int

const (
	trapped extendStatus = iota
	advanced
	reached
)

func (s extendStatus) String() string {
	switch s {
	case trapped:
		return "trapped"
	case advanced:
		return "advanced"
	case reached:
		return "reached"
	}
	return fmt.Sprintf("extendStatus(%d)", int(s))
}

// extendResult is the outcome of growing a tree towards a target. node is the handle of the
// configuration that was added, and is NoNode when trapped.
type extendResult struct {
	status extendStatus
	node   NodeID
}

// BiRRTMotionPlanner finds collision free paths with a bidirectional rapidly-exploring random tree.
// Two trees are grown from the start and the goal; each iteration one of them extends towards a
// random sample and the other greedily tries to connect to the newly added node. The planner holds
// no per-run state.
type BiRRTMotionPlanner struct {
	checker  CollisionChecker
	sampler  Sampler
	planOpts PlannerOptions
	logger   logging.Logger
}

// NewBiRRTMotionPlanner creates a BiRRTMotionPlanner. The options are copied and validated.
func NewBiRRTMotionPlanner(
	checker CollisionChecker,
	sampler Sampler,
	opt *PlannerOptions,
	logger logging.Logger,
) (*BiRRTMotionPlanner, error) {
	if opt == nil {
		return nil, errNoPlannerOptions
	}
	if checker == nil {
		return nil, errNilCollisionChecker
	}
	if sampler == nil {
		return nil, errNilSampler
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("birrt")
	}
	return &BiRRTMotionPlanner{
		checker:  checker,
		sampler:  sampler,
		planOpts: *opt,
		logger:   logger,
	}, nil
}

// Options returns a copy of the planner's options.
func (mp *BiRRTMotionPlanner) Options() PlannerOptions {
	return mp.planOpts
}

// Plan returns a path from start to goal, both inclusive. An empty path with a nil error means no
// path was found within the iteration budget.
func (mp *BiRRTMotionPlanner) Plan(ctx context.Context, start, goal Config) ([]Config, error) {
	solution, err := mp.Solve(ctx, start, goal)
	if err != nil {
		return nil, err
	}
	return solution.Path, nil
}

// Solve is like Plan but also returns both trees for inspection. The returned Solution is non-nil
// whenever planning began, including when an error stopped it.
func (mp *BiRRTMotionPlanner) Solve(ctx context.Context, start, goal Config) (*Solution, error) {
	if start.Dim() == 0 {
		return nil, fmt.Errorf("start: %w", errEmptyConfiguration)
	}
	if goal.Dim() != start.Dim() {
		return nil, fmt.Errorf("goal: %w", NewDimensionMismatchError(start.Dim(), goal.Dim()))
	}
	if mp.planOpts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, mp.planOpts.timeout())
		defer cancel()
	}
	startTime := time.Now()

	solution := &Solution{
		StartTree: newTreeWithIndex(start, mp.planOpts.NearestNeighbor),
		GoalTree:  newTreeWithIndex(goal, mp.planOpts.NearestNeighbor),
	}
	mp.logger.CDebugf(ctx, "starting birrt from %v to %v", start, goal)
	if mp.checker.IsColliding(start) {
		mp.logger.CWarnf(ctx, "start configuration %v is in collision", start)
	}
	if mp.checker.IsColliding(goal) {
		mp.logger.CWarnf(ctx, "goal configuration %v is in collision", goal)
	}

	if Distance(start, goal) < mp.planOpts.Epsilon {
		solution.Path = solution.StartTree.Backtrack(solution.StartTree.Root())
		solution.Elapsed = time.Since(startTime)
		return solution, nil
	}

	treeA, treeB := solution.StartTree, solution.GoalTree
	for i := 0; i < mp.planOpts.PlanIter; i++ {
		if ctx.Err() != nil {
			mp.logger.CDebugf(ctx, "birrt timed out after %d iterations", i)
			return solution, fmt.Errorf("birrt stopped after %d iterations: %w", i, ctx.Err())
		}
		solution.Iterations = i + 1

		sample := mp.sampler.Sample()
		if sample.Dim() != start.Dim() {
			return solution, fmt.Errorf("sampled configuration: %w", NewDimensionMismatchError(start.Dim(), sample.Dim()))
		}
		mp.logger.CDebugf(ctx, "iteration: %d target: %v", i, sample)

		grown, err := mp.extend(treeA, sample)
		if err != nil {
			return solution, err
		}
		if grown.status != trapped {
			connected, err := mp.connect(ctx, treeB, treeA.Config(grown.node))
			if err != nil {
				return solution, fmt.Errorf("birrt stopped after %d iterations: %w", i, err)
			}
			if connected.status == reached {
				solution.Path, solution.Junction = extractPath(solution.StartTree, solution.GoalTree, treeB.Config(connected.node))
				solution.Elapsed = time.Since(startTime)
				mp.logger.CDebugf(ctx, "birrt found solution after %d iterations in %v", solution.Iterations, solution.Elapsed)
				return solution, nil
			}
		}

		// alternate every iteration to keep the two trees growing evenly
		treeA, treeB = treeB, treeA
	}

	solution.Elapsed = time.Since(startTime)
	mp.logger.CDebugw(ctx, "birrt found no path",
		"iterations", solution.Iterations,
		"start_tree_size", solution.StartTree.Size(),
		"goal_tree_size", solution.GoalTree.Size(),
	)
	return solution, nil
}

// connect extends tree towards target until it is either reached or trapped.
func (mp *BiRRTMotionPlanner) connect(ctx context.Context, tree *Tree, target Config) (extendResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return extendResult{status: trapped, node: NoNode}, err
		}
		result, err := mp.extend(tree, target)
		if err != nil || result.status != advanced {
			return result, err
		}
	}
}

// extend grows tree by at most one step from its nearest node towards target.
func (mp *BiRRTMotionPlanner) extend(tree *Tree, target Config) (extendResult, error) {
	near := tree.Nearest(target)
	newNode, ok := mp.control(tree.Config(near), target)
	if !ok {
		return extendResult{status: trapped, node: NoNode}, nil
	}
	id, err := tree.AddNode(newNode, near)
	if err != nil {
		return extendResult{status: trapped, node: NoNode}, err
	}
	if Distance(target, newNode) < mp.planOpts.Epsilon {
		return extendResult{status: reached, node: id}, nil
	}
	return extendResult{status: advanced, node: id}, nil
}

// control steers from near towards target by at most QDeltaMax. Targets within Epsilon are taken
// directly. It returns false if the proposed configuration is in collision.
func (mp *BiRRTMotionPlanner) control(near, target Config) (Config, bool) {
	var proposed Config
	if Distance(near, target) <= mp.planOpts.Epsilon {
		proposed = target.Copy()
	} else {
		delta := make([]float64, near.Dim())
		floats.SubTo(delta, target.Q, near.Q)
		step := limitStepSize(delta, mp.planOpts.QDeltaMax)
		q := make([]float64, near.Dim())
		floats.AddTo(q, near.Q, step)
		proposed = Config{Q: q}
	}

	if mp.checker.IsColliding(proposed) {
		return Config{}, false
	}
	return proposed, true
}

// limitStepSize scales delta down to a norm of maxStep when it is longer. It never scales up.
func limitStepSize(delta []float64, maxStep float64) []float64 {
	step := slices.Clone(delta)
	if mag := floats.Norm(step, 2); mag > maxStep {
		floats.Scale(maxStep/mag, step)
	}
	return step
}

// extractPath joins the two trees at the node nearest to meeting in each of them. The path runs
// from the start tree root to the goal tree root; junction is the index of its first goal tree node.
func extractPath(startTree, goalTree *Tree, meeting Config) (path []Config, junction int) {
	path = startTree.Backtrack(startTree.Nearest(meeting))
	junction = len(path)
	fromGoal := goalTree.Backtrack(goalTree.Nearest(meeting))
	slices.Reverse(fromGoal)
	return append(path, fromGoal...), junction
}
