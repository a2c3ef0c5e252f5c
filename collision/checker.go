package collision

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/kh11kim/rrt/motionplan"
)

// ObstacleChecker reports a collision when a configuration lies inside any of its geometries.
type ObstacleChecker struct {
	dim        int
	geometries []Geometry
}

// NewObstacleChecker creates an ObstacleChecker for configurations of dimension dim. Every
// geometry must have that dimension.
func NewObstacleChecker(dim int, geometries ...Geometry) (*ObstacleChecker, error) {
	var err error
	for i, g := range geometries {
		if g == nil {
			err = multierr.Append(err, fmt.Errorf("obstacle %d is nil", i))
			continue
		}
		if g.Dim() != dim {
			err = multierr.Append(err, fmt.Errorf("obstacle %d: %w", i, motionplan.NewDimensionMismatchError(dim, g.Dim())))
		}
	}
	if err != nil {
		return nil, err
	}
	return &ObstacleChecker{dim: dim, geometries: geometries}, nil
}

// Geometries returns the obstacles of the checker.
func (oc *ObstacleChecker) Geometries() []Geometry {
	return append([]Geometry(nil), oc.geometries...)
}

// IsColliding implements motionplan.CollisionChecker.
func (oc *ObstacleChecker) IsColliding(c motionplan.Config) bool {
	if c.Dim() != oc.dim {
		return true
	}
	for _, g := range oc.geometries {
		if g.Contains(c.Q) {
			return true
		}
	}
	return false
}

// BoundsChecker reports a collision when any coordinate lies outside its limit.
type BoundsChecker struct {
	limits []motionplan.Limit
}

// NewBoundsChecker creates a BoundsChecker. Limits are inclusive.
func NewBoundsChecker(limits []motionplan.Limit) *BoundsChecker {
	return &BoundsChecker{limits: append([]motionplan.Limit(nil), limits...)}
}

// IsColliding implements motionplan.CollisionChecker.
func (bc *BoundsChecker) IsColliding(c motionplan.Config) bool {
	if c.Dim() != len(bc.limits) {
		return true
	}
	for i, lim := range bc.limits {
		if c.Q[i] < lim.Min || c.Q[i] > lim.Max {
			return true
		}
	}
	return false
}

type checkers []motionplan.CollisionChecker

// Checkers combines several checkers into one that collides when any of them does. Nil checkers
// are skipped.
func Checkers(cs ...motionplan.CollisionChecker) motionplan.CollisionChecker {
	combined := make(checkers, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			combined = append(combined, c)
		}
	}
	return combined
}

func (cs checkers) IsColliding(c motionplan.Config) bool {
	for _, checker := range cs {
		if checker.IsColliding(c) {
			return true
		}
	}
	return false
}
