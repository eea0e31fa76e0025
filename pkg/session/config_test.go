package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statetools/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	assert.Equal(t, 128, cfg.Capacity)
	assert.Equal(t, time.Hour, cfg.TTL)
	assert.Zero(t, cfg.CleanupInterval)
}

func TestNewFromConfig(t *testing.T) {
	t.Run("applies capacity", func(t *testing.T) {
		store := session.NewFromConfig(session.Config{Capacity: 2})
		defer store.Close()

		ctx := context.Background()
		for range 5 {
			_, err := store.Create(ctx, "")
			require.NoError(t, err)
		}
		assert.Equal(t, 2, store.Len())
	})

	t.Run("zero config uses defaults", func(t *testing.T) {
		store := session.NewFromConfig(session.Config{})
		defer store.Close()

		ctx := context.Background()
		for range 130 {
			_, err := store.Create(ctx, "")
			require.NoError(t, err)
		}
		assert.Equal(t, 128, store.Len())
	})

	t.Run("options override config", func(t *testing.T) {
		store := session.NewFromConfig(session.Config{Capacity: 10}, session.WithCapacity(1))
		defer store.Close()

		ctx := context.Background()
		_, _ = store.Create(ctx, "")
		_, _ = store.Create(ctx, "")
		assert.Equal(t, 1, store.Len())
	})
}
