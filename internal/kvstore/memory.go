package kvstore

import (
	"context"
	"slices"
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"
)

// Memory keeps entries in process memory. Nothing survives a restart.
type Memory struct {
	cache  *gocache.Cache
	closed atomic.Bool
}

// NewMemory returns an empty in-memory store. Entries never expire.
func NewMemory() *Memory {
	return &Memory{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.closed.Load() {
		return nil, false, ErrClosed
	}
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(b), true, nil
}

func (m *Memory) Put(_ context.Context, entries ...Entry) error {
	if m.closed.Load() {
		return ErrClosed
	}
	for _, e := range entries {
		m.cache.Set(e.Key, slices.Clone(e.Value), gocache.NoExpiration)
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	if m.closed.Load() {
		return ErrClosed
	}
	for _, k := range keys {
		m.cache.Delete(k)
	}
	return nil
}

func (m *Memory) Close() error {
	m.closed.Store(true)
	return nil
}
