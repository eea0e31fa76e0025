package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statetools/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"session id", logger.SessionID("s1"), "session_id", "s1"},
		{"tool", logger.Tool("calculator"), "tool", "calculator"},
		{"component", logger.Component("store"), "component", "store"},
		{"event", logger.Event("evicted"), "event", "evicted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}

func TestEmptyIDs(t *testing.T) {
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.SessionID("").Equal(slog.Attr{}))
}

func TestDurationAndStatus(t *testing.T) {
	d := logger.Duration(2 * time.Second)
	require.Equal(t, "duration", d.Key)
	assert.Equal(t, 2*time.Second, d.Value.Duration())

	s := logger.StatusCode(404)
	require.Equal(t, "status_code", s.Key)
	assert.Equal(t, int64(404), s.Value.Int64())
}
