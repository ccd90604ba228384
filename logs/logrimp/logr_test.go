package logrimp

import (
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/boundedstack/stackutils/commonerrors"
)

func TestLoggerImplementations(t *testing.T) {
	zl, err := zap.NewDevelopment()
	require.NoError(t, err)
	tests := []struct {
		Logger logr.Logger
		name   string
	}{
		{
			Logger: NewNoopLogger(),
			name:   "NoOp",
		},
		{
			Logger: NewStdOutLogr(1),
			name:   "Standard Output",
		},
		{
			Logger: NewZapLogger(zl),
			name:   "Zap",
		},
		{
			Logger: NewZapLogger(nil),
			name:   "Zap undefined",
		},
		{
			Logger: NewHclogLogger(hclog.New(nil)),
			name:   "HClog",
		},
		{
			Logger: NewLogrusLogger(logrus.New()),
			name:   "Logrus",
		},
		{
			Logger: NewQuietLogger(NewStdOutLogr(0)),
			name:   "Quiet",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			logger := test.Logger
			logger.WithName(faker.Name()).WithValues("foo", "bar").Info(faker.Sentence())
			logger.V(1).Info(faker.Sentence(), "capacity", 32)
			logger.Error(commonerrors.ErrOutOfMemory, faker.Sentence(), faker.Word(), faker.Name())
		})
	}
}

func TestQuietLogger(t *testing.T) {
	var lines []string
	underlying := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})
	logger := NewQuietLogger(underlying)
	assert.False(t, logger.Enabled())
	logger.Info("not printed")
	logger.WithValues("size", 3).WithName("stack").Error(commonerrors.ErrFull, "printed")
	require.Len(t, lines, 1)
	assert.True(t, strings.Contains(lines[0], "printed"))
	assert.True(t, strings.Contains(lines[0], "stack"))
	assert.True(t, strings.Contains(lines[0], "size"))
}
