// Package config reads planning problems from disk and builds everything needed to solve them.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/kh11kim/rrt/collision"
	"github.com/kh11kim/rrt/motionplan"
)

// Obstacle types understood in problem files.
const (
	BoxObstacle    = "box"
	SphereObstacle = "sphere"
)

// Problem describes a planning problem: where to go, the space to sample from, what to avoid, and
// how to plan.
type Problem struct {
	ConfigFilePath string `json:"-"`

	Start     []float64          `json:"start"`
	Goal      []float64          `json:"goal"`
	Limits    []motionplan.Limit `json:"limits"`
	Obstacles []Obstacle         `json:"obstacles,omitempty"`

	// Seed for the sampler.
	Seed int64 `json:"seed"`

	Planner *motionplan.PlannerOptions `json:"planner,omitempty"`
}

// Obstacle is a box or a sphere.
type Obstacle struct {
	Type     string    `json:"type"`
	Center   []float64 `json:"center"`
	HalfSize []float64 `json:"half_size,omitempty"`
	Radius   float64   `json:"radius,omitempty"`
}

// Geometry returns the collision geometry described by the obstacle.
func (o *Obstacle) Geometry() (collision.Geometry, error) {
	switch o.Type {
	case BoxObstacle:
		return collision.NewBox(o.Center, o.HalfSize)
	case SphereObstacle:
		return collision.NewSphere(o.Center, o.Radius)
	default:
		return nil, fmt.Errorf("unknown obstacle type %q", o.Type)
	}
}

// Dim returns the dimension of the problem's configuration space.
func (p *Problem) Dim() int {
	return len(p.Start)
}

// Validate returns every problem found with the configuration, or nil.
func (p *Problem) Validate() error {
	var err error
	dim := p.Dim()
	if dim == 0 {
		err = multierr.Append(err, errors.New("\"start\" is required"))
	}
	if len(p.Goal) != dim {
		err = multierr.Append(err, fmt.Errorf("\"goal\": %w", motionplan.NewDimensionMismatchError(dim, len(p.Goal))))
	}
	if len(p.Limits) != dim {
		err = multierr.Append(err, fmt.Errorf("\"limits\": %w", motionplan.NewDimensionMismatchError(dim, len(p.Limits))))
	}
	for i, lim := range p.Limits {
		if lim.Min > lim.Max {
			err = multierr.Append(err, fmt.Errorf("limit %d has min %v greater than max %v", i, lim.Min, lim.Max))
		}
	}
	for i := range p.Obstacles {
		g, gErr := p.Obstacles[i].Geometry()
		if gErr != nil {
			err = multierr.Append(err, fmt.Errorf("obstacle %d: %w", i, gErr))
			continue
		}
		if g.Dim() != dim {
			err = multierr.Append(err, fmt.Errorf("obstacle %d: %w", i, motionplan.NewDimensionMismatchError(dim, g.Dim())))
		}
	}
	if p.Planner != nil {
		err = multierr.Append(err, p.Planner.Validate())
	}
	return err
}
