package utils

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"github.com/kh11kim/rrt/logging"
)

func TestGetenv(t *testing.T) {
	logger := logging.NewTestLogger(t)

	t.Setenv("BIRRT_TEST_INT", "")
	test.That(t, GetenvInt("BIRRT_TEST_INT", 7, logger), test.ShouldEqual, 7)
	t.Setenv("BIRRT_TEST_INT", "42")
	test.That(t, GetenvInt("BIRRT_TEST_INT", 7, logger), test.ShouldEqual, 42)
	t.Setenv("BIRRT_TEST_INT", "forty-two")
	test.That(t, GetenvInt("BIRRT_TEST_INT", 7, logger), test.ShouldEqual, 7)

	t.Setenv("BIRRT_TEST_FLOAT", "2.5")
	test.That(t, GetenvFloat("BIRRT_TEST_FLOAT", 1, logger), test.ShouldEqual, 2.5)
	t.Setenv("BIRRT_TEST_FLOAT", "x")
	test.That(t, GetenvFloat("BIRRT_TEST_FLOAT", 1, nil), test.ShouldEqual, 1.)

	t.Setenv("BIRRT_TEST_BOOL", "yes")
	test.That(t, GetenvBool("BIRRT_TEST_BOOL"), test.ShouldBeTrue)
	t.Setenv("BIRRT_TEST_BOOL", "no")
	test.That(t, GetenvBool("BIRRT_TEST_BOOL"), test.ShouldBeFalse)
}

func TestResolveFile(t *testing.T) {
	_, err := os.Stat(ResolveFile("go.mod"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, filepath.Base(ResolveFile("utils/env.go")), test.ShouldEqual, "env.go")
}
