package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statetools/pkg/session"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	store := session.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	sess, err := store.Create(context.Background(), "")
	require.NoError(t, err)
	return sess
}

type tally struct {
	hits *[]int
}

func (t tally) Clone() tally {
	if t.hits == nil {
		return t
	}
	hits := append([]int(nil), *t.hits...)
	return tally{hits: &hits}
}

func TestUpdate(t *testing.T) {
	t.Run("absent key starts from zero value", func(t *testing.T) {
		sess := newTestSession(t)

		err := session.Update(sess, "counter", func(v *int) error {
			assert.Equal(t, 0, *v)
			*v++
			return nil
		})
		require.NoError(t, err)

		err = session.View(sess, "counter", func(v int, ok bool) {
			assert.True(t, ok)
			assert.Equal(t, 1, v)
		})
		require.NoError(t, err)
	})

	t.Run("failing callback leaves bag untouched", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, session.Update(sess, "items", func(v *[]string) error {
			*v = append(*v, "a")
			return nil
		}))

		boom := errors.New("rejected")
		err := session.Update(sess, "items", func(v *[]string) error {
			*v = append(*v, "b")
			return boom
		})
		assert.ErrorIs(t, err, boom)

		require.NoError(t, session.View(sess, "items", func(v []string, _ bool) {
			assert.Equal(t, []string{"a"}, v)
		}))
	})

	t.Run("in-place slice writes are rolled back on failure", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, session.Update(sess, "nums", func(v *[]int) error {
			*v = append(*v, 1, 2)
			return nil
		}))

		err := session.Update(sess, "nums", func(v *[]int) error {
			(*v)[0] = 99
			return errors.New("fail")
		})
		require.Error(t, err)

		require.NoError(t, session.View(sess, "nums", func(v []int, _ bool) {
			assert.Equal(t, []int{1, 2}, v)
		}))
	})

	t.Run("in-place map writes are rolled back on failure", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, session.Update(sess, "counts", func(v *map[string]int) error {
			*v = map[string]int{"add": 1}
			return nil
		}))

		err := session.Update(sess, "counts", func(v *map[string]int) error {
			(*v)["add"] = 7
			(*v)["divide"] = 1
			return errors.New("fail")
		})
		require.Error(t, err)

		require.NoError(t, session.View(sess, "counts", func(v map[string]int, _ bool) {
			assert.Equal(t, map[string]int{"add": 1}, v)
		}))
	})

	t.Run("cloner values are copied with Clone", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, session.Update(sess, "tally", func(v *tally) error {
			*v = tally{hits: &[]int{1}}
			return nil
		}))

		err := session.Update(sess, "tally", func(v *tally) error {
			(*v.hits)[0] = 42
			return errors.New("fail")
		})
		require.Error(t, err)

		require.NoError(t, session.View(sess, "tally", func(v tally, _ bool) {
			assert.Equal(t, []int{1}, *v.hits)
		}))
	})

	t.Run("type mismatch", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, session.Update(sess, "key", func(v *int) error {
			*v = 5
			return nil
		}))

		err := session.Update(sess, "key", func(v *string) error { return nil })
		assert.ErrorIs(t, err, session.ErrTypeMismatch)

		err = session.View(sess, "key", func(v string, ok bool) {})
		assert.ErrorIs(t, err, session.ErrTypeMismatch)
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		sess := newTestSession(t)

		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, session.Update(sess, "log", func(v *[]int) error {
					*v = append(*v, len(*v))
					return nil
				}))
			}()
		}
		wg.Wait()

		require.NoError(t, session.View(sess, "log", func(v []int, _ bool) {
			require.Len(t, v, 100)
			for i, n := range v {
				assert.Equal(t, i, n)
			}
		}))
	})
}

func TestView_UninitializedKey(t *testing.T) {
	sess := newTestSession(t)

	called := false
	err := session.View(sess, "missing", func(v []string, ok bool) {
		called = true
		assert.False(t, ok)
		assert.Nil(t, v)
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestSessions_AreIsolated(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)

	require.NoError(t, session.Update(a, "k", func(v *[]string) error {
		*v = append(*v, "only-a")
		return nil
	}))

	require.NoError(t, session.View(b, "k", func(v []string, ok bool) {
		assert.False(t, ok)
		assert.Empty(t, v)
	}))
}
