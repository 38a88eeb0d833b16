package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("otp", slog.String("charset", "digits"), slog.Int("length", 6))
	require.Equal(t, "otp", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "charset", g[0].Key)
	assert.Equal(t, "length", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestServiceAndEnvironment(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "service", logger.Service("api").Key)
	assert.Equal(t, "env", logger.Environment("production").Key)
	assert.True(t, logger.Service("").Equal(slog.Attr{}))
	assert.True(t, logger.Environment("").Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("random")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "random", attr.Value.String())
}

func TestAction(t *testing.T) {
	t.Parallel()
	attr := logger.Action("password")
	require.Equal(t, "action", attr.Key)
	assert.Equal(t, "password", attr.Value.String())
}

func TestResult(t *testing.T) {
	t.Parallel()
	attr := logger.Result("failure")
	require.Equal(t, "result", attr.Key)
	assert.Equal(t, "failure", attr.Value.String())
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("length", 16)
	require.Equal(t, "length", attr.Key)
	assert.Equal(t, int64(16), attr.Value.Int64())
}

func TestKey(t *testing.T) {
	t.Parallel()
	attr := logger.Key("min", int64(-5))
	require.Equal(t, "min", attr.Key)
	assert.Equal(t, int64(-5), attr.Value.Int64())

	empty := logger.Key("nothing", nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}
