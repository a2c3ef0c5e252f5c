package motionplan

// CollisionChecker decides whether a configuration is invalid.
type CollisionChecker interface {
	IsColliding(Config) bool
}

// CollisionCheckerFunc adapts a plain predicate to a CollisionChecker.
type CollisionCheckerFunc func(Config) bool

// IsColliding calls f(c).
func (f CollisionCheckerFunc) IsColliding(c Config) bool {
	return f(c)
}

// Sampler produces random configurations to grow the trees towards.
type Sampler interface {
	Sample() Config
}

// SamplerFunc adapts a plain function to a Sampler.
type SamplerFunc func() Config

// Sample calls f().
func (f SamplerFunc) Sample() Config {
	return f()
}
