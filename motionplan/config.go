package motionplan

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// NodeID is the handle a Tree assigns to a configuration when it is inserted. Handles are dense
// indices into the tree's node list, starting at 0 for the root.
type NodeID int

// NoNode is the parent of a tree root. It never identifies a stored node.
const NoNode NodeID = -1

// Config is a point in configuration space, e.g. a set of joint angles. The values are written once
// and must not be modified after the Config has been handed to a Tree.
type Config struct {
	Q []float64
}

// NewConfig returns a Config holding a copy of q.
func NewConfig(q ...float64) Config {
	return Config{Q: slices.Clone(q)}
}

// Copy returns a Config with the same values and no tree identity.
func (c Config) Copy() Config {
	return Config{Q: slices.Clone(c.Q)}
}

// Dim returns the dimension of the configuration.
func (c Config) Dim() int {
	return len(c.Q)
}

func (c Config) String() string {
	return fmt.Sprintf("%v", c.Q)
}

// Distance returns the Euclidean distance between two configurations of equal dimension.
func Distance(a, b Config) float64 {
	return floats.Distance(a.Q, b.Q, 2)
}

// ConfigsToFloats unwraps a path into raw float slices.
func ConfigsToFloats(path []Config) [][]float64 {
	out := make([][]float64, 0, len(path))
	for _, c := range path {
		out = append(out, slices.Clone(c.Q))
	}
	return out
}
