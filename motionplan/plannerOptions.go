package motionplan

import (
	"time"

	"go.uber.org/multierr"

	"github.com/kh11kim/rrt/logging"
	"github.com/kh11kim/rrt/utils"
)

// default values for planning options.
const (
	// Distance below which a configuration counts as having reached a target.
	defaultEpsilon = 0.1

	// Reserved for goal-biased sampling.
	defaultGoalProbability = 0.2

	// Number of planner iterations before giving up.
	defaultPlanIter = 100

	// Maximum magnitude of a single extension step.
	defaultQDeltaMax = 0.1

	// Reserved for damped least squares steering.
	defaultDLSDamping = 0.1

	// No deadline unless one is asked for.
	defaultTimeout = 0.
)

// Environment variables that override the defaults returned by NewBasicPlannerOptions.
const (
	PlanIterEnvVar = "BIRRT_PLAN_ITER"
	TimeoutEnvVar  = "BIRRT_TIMEOUT"
)

// PlannerOptions are a set of options to be passed to a planner which will specify how to solve a
// motion planning problem.
type PlannerOptions struct {
	// How close a new configuration must get to its target to count as having reached it.
	Epsilon float64 `json:"eps"`

	// Probability of sampling the goal. Accepted and validated but not used by the planner.
	GoalProbability float64 `json:"p_goal"`

	// Number of iterations before the planner reports that no path was found.
	PlanIter int `json:"max_iter"`

	// Maximum euclidean length of a single extension.
	QDeltaMax float64 `json:"q_delta_max"`

	// Damping for damped least squares steering. Accepted and validated but not used by the planner.
	DLSDamping float64 `json:"dls_damping"`

	// How the trees look up their nearest node.
	NearestNeighbor NearestNeighborType `json:"nearest_neighbor"`

	// Number of seconds before terminating the planner. Zero means no deadline.
	Timeout float64 `json:"timeout"`
}

// NewBasicPlannerOptions specifies a set of basic options for the planner.
func NewBasicPlannerOptions() *PlannerOptions {
	opt := &PlannerOptions{}
	opt.Epsilon = defaultEpsilon
	opt.GoalProbability = defaultGoalProbability
	opt.QDeltaMax = defaultQDeltaMax
	opt.DLSDamping = defaultDLSDamping
	opt.NearestNeighbor = LinearNearestNeighbor

	logger := logging.Global()
	opt.PlanIter = utils.GetenvInt(PlanIterEnvVar, defaultPlanIter, logger)
	opt.Timeout = utils.GetenvFloat(TimeoutEnvVar, defaultTimeout, logger)

	return opt
}

// Validate returns every problem with the options, or nil.
func (opt *PlannerOptions) Validate() error {
	var err error
	if opt.Epsilon <= 0 {
		err = multierr.Append(err, newOptionError("eps", "must be positive", opt.Epsilon))
	}
	if opt.QDeltaMax <= 0 {
		err = multierr.Append(err, newOptionError("q_delta_max", "must be positive", opt.QDeltaMax))
	}
	if opt.PlanIter < 0 {
		err = multierr.Append(err, newOptionError("max_iter", "cannot be negative", opt.PlanIter))
	}
	if opt.GoalProbability < 0 || opt.GoalProbability > 1 {
		err = multierr.Append(err, newOptionError("p_goal", "must be within [0, 1]", opt.GoalProbability))
	}
	if opt.DLSDamping < 0 {
		err = multierr.Append(err, newOptionError("dls_damping", "cannot be negative", opt.DLSDamping))
	}
	if opt.Timeout < 0 {
		err = multierr.Append(err, newOptionError("timeout", "cannot be negative", opt.Timeout))
	}
	switch opt.NearestNeighbor {
	case LinearNearestNeighbor, KDTreeNearestNeighbor:
	default:
		err = multierr.Append(err, NewUnknownNearestNeighborError(opt.NearestNeighbor))
	}
	return err
}

func (opt *PlannerOptions) timeout() time.Duration {
	return time.Duration(opt.Timeout * float64(time.Second))
}
