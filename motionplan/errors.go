package motionplan

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned (wrapped) whenever two configurations that must share a
// dimension do not.
var ErrDimensionMismatch = errors.New("configuration dimension mismatch")

var (
	errNoPlannerOptions    = errors.New("planner options cannot be nil")
	errNilCollisionChecker = errors.New("collision checker cannot be nil")
	errNilSampler          = errors.New("sampler cannot be nil")
	errEmptyConfiguration  = errors.New("configuration must have at least one dimension")

	errUnknownNearestNeighbor = errors.New("unknown nearest neighbor type")
)

// NewDimensionMismatchError returns an error wrapping ErrDimensionMismatch.
func NewDimensionMismatchError(expected, actual int) error {
	return fmt.Errorf("%w: expected %d values, got %d", ErrDimensionMismatch, expected, actual)
}

// NewUnknownNearestNeighborError returns an error for an unsupported nearest neighbor index type.
func NewUnknownNearestNeighborError(kind NearestNeighborType) error {
	return fmt.Errorf("%w %q, expected %q or %q", errUnknownNearestNeighbor, kind, LinearNearestNeighbor, KDTreeNearestNeighbor)
}

func newParentNotInTreeError(parent NodeID, size int) error {
	return fmt.Errorf("parent node %d is not in the tree (size %d)", parent, size)
}

func newSelfParentError(id NodeID) error {
	return fmt.Errorf("node %d cannot be its own parent", id)
}

func newOptionError(name, problem string, value interface{}) error {
	return fmt.Errorf("planner option %s %s, got %v", name, problem, value)
}
