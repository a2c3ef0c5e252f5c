package config

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/kh11kim/rrt/collision"
	"github.com/kh11kim/rrt/logging"
	"github.com/kh11kim/rrt/motionplan"
)

// Setup is a problem turned into a planner that is ready to run.
type Setup struct {
	Planner   *motionplan.BiRRTMotionPlanner
	Checker   motionplan.CollisionChecker
	Sampler   *motionplan.UniformSampler
	Obstacles []collision.Geometry
	Start     motionplan.Config
	Goal      motionplan.Config
}

// Build creates the collision checker, sampler and planner for the problem. Configurations outside
// the limits count as colliding.
func (p *Problem) Build(logger logging.Logger) (*Setup, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	obstacles := make([]collision.Geometry, 0, len(p.Obstacles))
	for i := range p.Obstacles {
		g, err := p.Obstacles[i].Geometry()
		if err != nil {
			return nil, errors.Wrapf(err, "obstacle %d", i)
		}
		obstacles = append(obstacles, g)
	}
	obstacleChecker, err := collision.NewObstacleChecker(p.Dim(), obstacles...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create obstacle checker")
	}
	checker := collision.Checkers(obstacleChecker, collision.NewBoundsChecker(p.Limits))

	//nolint:gosec
	sampler, err := motionplan.NewUniformSampler(p.Limits, rand.New(rand.NewSource(p.Seed)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sampler")
	}

	opt := p.Planner
	if opt == nil {
		opt = motionplan.NewBasicPlannerOptions()
	}
	planner, err := motionplan.NewBiRRTMotionPlanner(checker, sampler, opt, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create planner")
	}

	return &Setup{
		Planner:   planner,
		Checker:   checker,
		Sampler:   sampler,
		Obstacles: obstacles,
		Start:     motionplan.NewConfig(p.Start...),
		Goal:      motionplan.NewConfig(p.Goal...),
	}, nil
}
