// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cachedKey struct {
	key       *SymmetricKey
	expiresAt time.Time
}

// CachingKeyDeriver wraps a [KeyDeriver] and keeps derived keys in memory
// for a fixed TTL, keyed by user ID. It is scoped to one session: Close
// drops every key and turns the cache into a pass-through.
//
// Expired keys are removed lazily on lookup or explicitly by Sweep.
// Concurrent misses for the same user share one derivation.
type CachingKeyDeriver struct {
	base  KeyDeriver
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu     sync.Mutex
	keys   map[string]cachedKey
	closed bool
}

// NewCachingKeyDeriver returns a cache in front of base. A non-positive ttl
// disables caching; the returned deriver then behaves exactly like base.
func NewCachingKeyDeriver(base KeyDeriver, ttl time.Duration) *CachingKeyDeriver {
	return &CachingKeyDeriver{
		base: base,
		ttl:  ttl,
		now:  time.Now,
		keys: make(map[string]cachedKey),
	}
}

// DeriveKey implements [KeyDeriver].
func (c *CachingKeyDeriver) DeriveKey(userID string) (*SymmetricKey, error) {
	if userID == "" || c.ttl <= 0 {
		return c.base.DeriveKey(userID)
	}

	if key, ok := c.lookup(userID); ok {
		return key, nil
	}

	v, err, _ := c.group.Do(userID, func() (any, error) {
		if key, ok := c.lookup(userID); ok {
			return key, nil
		}
		key, err := c.base.DeriveKey(userID)
		if err != nil {
			return nil, err
		}
		c.store(userID, key)
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*SymmetricKey), nil
}

func (c *CachingKeyDeriver) lookup(userID string) (*SymmetricKey, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.keys[userID]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.keys, userID)
		return nil, false
	}
	return entry.key, true
}

func (c *CachingKeyDeriver) store(userID string, key *SymmetricKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.keys[userID] = cachedKey{key: key, expiresAt: c.now().Add(c.ttl)}
}

// Len returns the number of keys currently held, expired ones included.
func (c *CachingKeyDeriver) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

// Purge forgets the key of userID.
func (c *CachingKeyDeriver) Purge(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.keys, userID)
}

// Sweep removes every expired key and returns how many were dropped.
func (c *CachingKeyDeriver) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for userID, entry := range c.keys {
		if !now.Before(entry.expiresAt) {
			delete(c.keys, userID)
			removed++
		}
	}
	return removed
}

// Close ends the session: all keys are dropped and nothing is cached
// afterwards. Close is idempotent.
func (c *CachingKeyDeriver) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	clear(c.keys)
}
