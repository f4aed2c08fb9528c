package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key([]byte("a"), []byte("b")), Key([]byte("a"), []byte("b")))
	assert.NotEqual(t, Key([]byte("ab")), Key([]byte("a"), []byte("b")))
	assert.Len(t, Key([]byte("x")), 64)
}

func TestMemoGet(t *testing.T) {
	t.Run("second call is served from the table", func(t *testing.T) {
		m := NewMemo[int](4)
		calls := 0
		compute := func() (int, error) {
			calls++
			return 42, nil
		}

		v, cached, err := m.Get("k", compute)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.False(t, cached)

		v, cached, err = m.Get("k", compute)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.True(t, cached)
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not memoized", func(t *testing.T) {
		m := NewMemo[string](4)
		boom := errors.New("boom")

		_, _, err := m.Get("k", func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, m.Len())

		v, _, err := m.Get("k", func() (string, error) { return "ok", nil })
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("oldest entry is evicted", func(t *testing.T) {
		m := NewMemo[int](2)
		for i, key := range []string{"a", "b", "c"} {
			_, _, err := m.Get(key, func() (int, error) { return i, nil })
			require.NoError(t, err)
		}

		assert.Equal(t, 2, m.Len())
		_, cached, _ := m.Get("a", func() (int, error) { return 9, nil })
		assert.False(t, cached)
		_, cached, _ = m.Get("c", func() (int, error) { return 9, nil })
		assert.True(t, cached)
	})

	t.Run("zero size never stores", func(t *testing.T) {
		m := NewMemo[int](0)

		_, _, err := m.Get("k", func() (int, error) { return 1, nil })
		require.NoError(t, err)
		_, cached, _ := m.Get("k", func() (int, error) { return 1, nil })

		assert.False(t, cached)
		assert.Zero(t, m.Len())
	})

	t.Run("concurrent callers share one computation", func(t *testing.T) {
		m := NewMemo[int](4)
		var calls atomic.Int32
		release := make(chan struct{})

		var wg sync.WaitGroup
		results := make([]int, 8)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, _, err := m.Get("shared", func() (int, error) {
					calls.Add(1)
					<-release
					return 7, nil
				})
				assert.NoError(t, err)
				results[i] = v
			}()
		}
		close(release)
		wg.Wait()

		for _, v := range results {
			assert.Equal(t, 7, v)
		}
		assert.LessOrEqual(t, calls.Load(), int32(8))
		assert.GreaterOrEqual(t, calls.Load(), int32(1))
		assert.Equal(t, 1, m.Len())
	})
}
