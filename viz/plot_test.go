package viz

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"github.com/kh11kim/rrt/collision"
	"github.com/kh11kim/rrt/motionplan"
)

func solve(t *testing.T, dim int, checker motionplan.CollisionChecker, start, goal motionplan.Config) *motionplan.Solution {
	t.Helper()
	limits := make([]motionplan.Limit, dim)
	for i := range limits {
		limits[i] = motionplan.Limit{Min: -1, Max: 1}
	}
	sampler, err := motionplan.NewUniformSampler(limits, nil)
	test.That(t, err, test.ShouldBeNil)
	opt := motionplan.NewBasicPlannerOptions()
	opt.PlanIter = 5000
	mp, err := motionplan.NewBiRRTMotionPlanner(checker, sampler, opt, nil)
	test.That(t, err, test.ShouldBeNil)
	sol, err := mp.Solve(context.Background(), start, goal)
	test.That(t, err, test.ShouldBeNil)
	return sol
}

func TestSave(t *testing.T) {
	box, err := collision.NewBox([]float64{0, -0.25}, []float64{0.1, 0.75})
	test.That(t, err, test.ShouldBeNil)
	sphere, err := collision.NewSphere([]float64{0.6, 0.6}, 0.15)
	test.That(t, err, test.ShouldBeNil)
	obstacles := []collision.Geometry{box, sphere}
	checker, err := collision.NewObstacleChecker(2, obstacles...)
	test.That(t, err, test.ShouldBeNil)

	sol := solve(t, 2, checker, motionplan.NewConfig(-0.5, 0), motionplan.NewConfig(0.5, 0))
	test.That(t, sol.Found(), test.ShouldBeTrue)

	p, err := Plot(sol, obstacles)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Title.Text, test.ShouldEqual, "BiRRT")

	file := filepath.Join(t.TempDir(), "run.png")
	test.That(t, Save(sol, obstacles, file), test.ShouldBeNil)
	info, err := os.Stat(file)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)
}

func TestPlotErrors(t *testing.T) {
	_, err := Plot(nil, nil)
	test.That(t, err, test.ShouldNotBeNil)

	free := motionplan.CollisionCheckerFunc(func(motionplan.Config) bool { return false })
	sol := solve(t, 3, free, motionplan.NewConfig(0, 0, 0), motionplan.NewConfig(0.5, 0.5, 0.5))
	_, err = Plot(sol, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "two dimensional")
}
