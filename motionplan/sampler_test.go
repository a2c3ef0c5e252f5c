package motionplan

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestUniformSampler(t *testing.T) {
	limits := []Limit{{Min: -1, Max: 1}, {Min: 2, Max: 2}, {Min: 0, Max: 10}}
	//nolint:gosec
	sampler, err := NewUniformSampler(limits, rand.New(rand.NewSource(42)))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sampler.Dim(), test.ShouldEqual, 3)

	for i := 0; i < 1000; i++ {
		q := sampler.Sample()
		test.That(t, q.Dim(), test.ShouldEqual, 3)
		for j, lim := range limits {
			test.That(t, q.Q[j], test.ShouldBeGreaterThanOrEqualTo, lim.Min)
			test.That(t, q.Q[j], test.ShouldBeLessThanOrEqualTo, lim.Max)
		}
	}
}

func TestUniformSamplerSeeded(t *testing.T) {
	limits := []Limit{{Min: -1, Max: 1}, {Min: -1, Max: 1}}
	a, err := NewUniformSampler(limits, nil)
	test.That(t, err, test.ShouldBeNil)
	b, err := NewUniformSampler(limits, nil)
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 10; i++ {
		test.That(t, a.Sample().Q, test.ShouldResemble, b.Sample().Q)
	}
}

func TestUniformSamplerInfiniteLimits(t *testing.T) {
	sampler, err := NewUniformSampler([]Limit{{Min: math.Inf(-1), Max: math.Inf(1)}}, nil)
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 100; i++ {
		q := sampler.Sample().Q[0]
		test.That(t, math.Abs(q), test.ShouldBeLessThanOrEqualTo, 999)
	}
}

func TestNewUniformSamplerErrors(t *testing.T) {
	_, err := NewUniformSampler(nil, nil)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewUniformSampler([]Limit{{Min: 1, Max: -1}}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "limit 0")
	_, err = NewUniformSampler([]Limit{{Min: 0, Max: 1}, {Min: math.NaN(), Max: 1}}, nil)
	test.That(t, err, test.ShouldNotBeNil)
}
