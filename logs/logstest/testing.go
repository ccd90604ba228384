// Package logstest provides loggers for use in tests.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	logrusTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/boundedstack/stackutils/logs/logrimp"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	internalLogger, _ := logrusTest.NewNullLogger()
	return logrusr.New(internalLogger)
}

// NewStdTestLogger returns a test logger to standard output, including debug messages.
func NewStdTestLogger() logr.Logger {
	return logrimp.NewStdOutLogr(1)
}

// NewTestLogger returns a logger writing to the test output, including debug messages.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.NewWithOptions(t, testr.Options{Verbosity: 1})
}
