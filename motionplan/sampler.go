package motionplan

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Limit bounds one dimension of the configuration space.
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UniformSampler draws configurations uniformly within per-dimension limits. It is not safe for
// concurrent use.
type UniformSampler struct {
	limits   []Limit
	randseed *rand.Rand
}

// NewUniformSampler creates a sampler over the given limits. A nil seed uses a fixed seed so runs
// stay reproducible.
func NewUniformSampler(limits []Limit, seed *rand.Rand) (*UniformSampler, error) {
	if len(limits) == 0 {
		return nil, errors.New("sampler needs at least one limit")
	}
	for i, lim := range limits {
		if lim.Min > lim.Max || math.IsNaN(lim.Min) || math.IsNaN(lim.Max) {
			return nil, fmt.Errorf("limit %d is invalid: min %v, max %v", i, lim.Min, lim.Max)
		}
	}
	if seed == nil {
		//nolint:gosec
		seed = rand.New(rand.NewSource(1))
	}
	return &UniformSampler{limits: limits, randseed: seed}, nil
}

// Dim returns the dimension of the sampled configurations.
func (s *UniformSampler) Dim() int {
	return len(s.limits)
}

// Sample returns a random configuration within the limits.
func (s *UniformSampler) Sample() Config {
	q := make([]float64, 0, len(s.limits))
	for _, lim := range s.limits {
		l, u := lim.Min, lim.Max

		// Default to [-999,999] as range if limits are infinite
		if math.IsInf(l, -1) {
			l = -999
		}
		if math.IsInf(u, 1) {
			u = 999
		}

		q = append(q, s.randseed.Float64()*(u-l)+l)
	}
	return Config{Q: q}
}
