// Package utils contains small helpers shared by the planner packages.
package utils

import (
	"os"
	"slices"
	"strconv"

	"github.com/kh11kim/rrt/logging"
)

// EnvTrueValues contains strings that we interpret as boolean true in env vars.
var EnvTrueValues = []string{"true", "yes", "1", "TRUE", "YES"}

// GetenvInt returns the integer value of the env var `name`, or `defaultVal` when it is unset or
// does not parse.
func GetenvInt(name string, defaultVal int, logger logging.Logger) int {
	val := os.Getenv(name)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		if logger != nil {
			logger.Warnf("failed to parse %s env var %q, falling back to default %d", name, val, defaultVal)
		}
		return defaultVal
	}
	return parsed
}

// GetenvFloat returns the float value of the env var `name`, or `defaultVal` when it is unset or
// does not parse.
func GetenvFloat(name string, defaultVal float64, logger logging.Logger) float64 {
	val := os.Getenv(name)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		if logger != nil {
			logger.Warnf("failed to parse %s env var %q, falling back to default %v", name, val, defaultVal)
		}
		return defaultVal
	}
	return parsed
}

// GetenvBool reports whether the env var `name` is set to one of EnvTrueValues.
func GetenvBool(name string) bool {
	return slices.Contains(EnvTrueValues, os.Getenv(name))
}
