package config

import (
	"bytes"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/kh11kim/rrt/motionplan"
)

const defaultSeed = 1

// Read reads a problem from the given file. Environment variables referenced as ${VAR} are
// substituted before parsing.
func Read(filePath string) (*Problem, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read problem file %q", filePath)
	}
	return FromReader(filePath, bytes.NewReader(buf))
}

// FromReader reads a problem from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader) (*Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read problem")
	}

	problem := &Problem{
		ConfigFilePath: originalPath,
		Seed:           defaultSeed,
		Planner:        motionplan.NewBasicPlannerOptions(),
	}
	if err := json5.Unmarshal(data, problem); err != nil {
		return nil, errors.Wrapf(err, "failed to decode problem from json5")
	}
	if problem.Planner == nil {
		problem.Planner = motionplan.NewBasicPlannerOptions()
	}
	if err := problem.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid problem %q", originalPath)
	}
	return problem, nil
}
