package motionplan

import (
	"testing"
	"time"

	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestNewBasicPlannerOptions(t *testing.T) {
	opt := NewBasicPlannerOptions()
	test.That(t, opt.Epsilon, test.ShouldEqual, 0.1)
	test.That(t, opt.GoalProbability, test.ShouldEqual, 0.2)
	test.That(t, opt.PlanIter, test.ShouldEqual, 100)
	test.That(t, opt.QDeltaMax, test.ShouldEqual, 0.1)
	test.That(t, opt.DLSDamping, test.ShouldEqual, 0.1)
	test.That(t, opt.NearestNeighbor, test.ShouldEqual, LinearNearestNeighbor)
	test.That(t, opt.Timeout, test.ShouldEqual, 0.)
	test.That(t, opt.Validate(), test.ShouldBeNil)
}

func TestPlannerOptionsFromEnv(t *testing.T) {
	t.Setenv(PlanIterEnvVar, "2500")
	t.Setenv(TimeoutEnvVar, "1.5")
	opt := NewBasicPlannerOptions()
	test.That(t, opt.PlanIter, test.ShouldEqual, 2500)
	test.That(t, opt.timeout(), test.ShouldEqual, 1500*time.Millisecond)

	t.Setenv(PlanIterEnvVar, "many")
	test.That(t, NewBasicPlannerOptions().PlanIter, test.ShouldEqual, defaultPlanIter)
}

func TestPlannerOptionsValidate(t *testing.T) {
	opt := NewBasicPlannerOptions()
	opt.Epsilon = 0
	opt.QDeltaMax = -1
	opt.PlanIter = -3
	opt.GoalProbability = 1.5
	opt.DLSDamping = -0.1
	opt.Timeout = -1
	opt.NearestNeighbor = "octree"

	err := opt.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 7)
	test.That(t, err.Error(), test.ShouldContainSubstring, "eps must be positive")
	test.That(t, err.Error(), test.ShouldContainSubstring, `"octree"`)

	opt = NewBasicPlannerOptions()
	opt.PlanIter = 0
	opt.GoalProbability = 1
	opt.NearestNeighbor = KDTreeNearestNeighbor
	test.That(t, opt.Validate(), test.ShouldBeNil)
}
