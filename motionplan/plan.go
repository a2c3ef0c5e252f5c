package motionplan

import (
	"time"
)

// Solution is the result of one planning run. Path is empty when no path was found.
type Solution struct {
	Path       []Config
	StartTree  *Tree
	GoalTree   *Tree
	Iterations int
	Elapsed    time.Duration

	// Index of the first path element that came from the goal tree. Zero unless both trees
	// contributed to the path.
	Junction int
}

// Found reports whether a path was found.
func (s *Solution) Found() bool {
	return len(s.Path) > 0
}

// PathLength returns the summed euclidean length of the path.
func PathLength(path []Config) float64 {
	var length float64
	for i := 1; i < len(path); i++ {
		length += Distance(path[i-1], path[i])
	}
	return length
}

// MaxStep returns the longest distance between consecutive configurations of the path.
func MaxStep(path []Config) float64 {
	var longest float64
	for i := 1; i < len(path); i++ {
		if d := Distance(path[i-1], path[i]); d > longest {
			longest = d
		}
	}
	return longest
}
