package crypto

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDeriver counts calls to the wrapped deriver.
type countingDeriver struct {
	base  KeyDeriver
	calls atomic.Int32
	err   error
}

func (d *countingDeriver) DeriveKey(userID string) (*SymmetricKey, error) {
	d.calls.Add(1)
	if d.err != nil {
		return nil, d.err
	}
	return d.base.DeriveKey(userID)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache(ttl time.Duration) (*CachingKeyDeriver, *countingDeriver, *fakeClock) {
	base := &countingDeriver{base: newFastDeriver()}
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache := NewCachingKeyDeriver(base, ttl)
	cache.now = clock.Now
	return cache, base, clock
}

func TestCachingKeyDeriver_ReusesKey(t *testing.T) {
	cache, base, _ := newTestCache(time.Minute)

	k1, err := cache.DeriveKey("uid")
	require.NoError(t, err)
	k2, err := cache.DeriveKey("uid")
	require.NoError(t, err)

	assert.Same(t, k1, k2)
	assert.Equal(t, int32(1), base.calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestCachingKeyDeriver_EquivalentToBase(t *testing.T) {
	cache, _, _ := newTestCache(time.Minute)

	cached := NewCipherEngine(cache)
	plain := NewCipherEngine(newFastDeriver())

	env, err := cached.Encrypt("secret", "uid")
	require.NoError(t, err)
	got, err := plain.Decrypt(env, "uid")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)

	env, err = plain.Encrypt("other", "uid")
	require.NoError(t, err)
	got, err = cached.Decrypt(env, "uid")
	require.NoError(t, err)
	assert.Equal(t, "other", got)
}

func TestCachingKeyDeriver_Expiry(t *testing.T) {
	cache, base, clock := newTestCache(time.Minute)

	_, err := cache.DeriveKey("uid")
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	_, err = cache.DeriveKey("uid")
	require.NoError(t, err)
	assert.Equal(t, int32(1), base.calls.Load())

	clock.Advance(time.Second)
	_, err = cache.DeriveKey("uid")
	require.NoError(t, err)
	assert.Equal(t, int32(2), base.calls.Load())
}

func TestCachingKeyDeriver_Purge(t *testing.T) {
	cache, base, _ := newTestCache(time.Minute)

	_, err := cache.DeriveKey("a")
	require.NoError(t, err)
	_, err = cache.DeriveKey("b")
	require.NoError(t, err)

	cache.Purge("a")
	assert.Equal(t, 1, cache.Len())

	_, err = cache.DeriveKey("a")
	require.NoError(t, err)
	assert.Equal(t, int32(3), base.calls.Load())
}

func TestCachingKeyDeriver_Sweep(t *testing.T) {
	cache, _, clock := newTestCache(time.Minute)

	_, err := cache.DeriveKey("old")
	require.NoError(t, err)
	clock.Advance(30 * time.Second)
	_, err = cache.DeriveKey("new")
	require.NoError(t, err)

	clock.Advance(31 * time.Second)
	assert.Equal(t, 1, cache.Sweep())
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 0, cache.Sweep())
}

func TestCachingKeyDeriver_Close(t *testing.T) {
	cache, base, _ := newTestCache(time.Minute)

	_, err := cache.DeriveKey("uid")
	require.NoError(t, err)

	cache.Close()
	assert.Equal(t, 0, cache.Len())

	_, err = cache.DeriveKey("uid")
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, int32(2), base.calls.Load())

	cache.Close()
}

func TestCachingKeyDeriver_DisabledWithZeroTTL(t *testing.T) {
	cache, base, _ := newTestCache(0)

	for range 3 {
		_, err := cache.DeriveKey("uid")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), base.calls.Load())
	assert.Equal(t, 0, cache.Len())
}

func TestCachingKeyDeriver_ErrorsAreNotCached(t *testing.T) {
	base := &countingDeriver{err: errors.New("boom")}
	cache := NewCachingKeyDeriver(base, time.Minute)

	_, err := cache.DeriveKey("uid")
	require.Error(t, err)
	_, err = cache.DeriveKey("uid")
	require.Error(t, err)

	assert.Equal(t, int32(2), base.calls.Load())
	assert.Equal(t, 0, cache.Len())
}

func TestCachingKeyDeriver_EmptyUserPassesThrough(t *testing.T) {
	cache, _, _ := newTestCache(time.Minute)

	_, err := cache.DeriveKey("")
	assert.ErrorIs(t, err, ErrDerivation)
	assert.Equal(t, 0, cache.Len())
}

func TestCachingKeyDeriver_ConcurrentMisses(t *testing.T) {
	cache, base, _ := newTestCache(time.Minute)

	var wg sync.WaitGroup
	keys := make([]*SymmetricKey, 16)
	for i := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k, err := cache.DeriveKey("uid")
			assert.NoError(t, err)
			keys[i] = k
		}()
	}
	wg.Wait()

	for _, k := range keys {
		assert.Same(t, keys[0], k)
	}
	assert.LessOrEqual(t, base.calls.Load(), int32(16))
	assert.Equal(t, 1, cache.Len())
}
