// Package memory implements an in-memory content store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/marmos91/dittodrive/pkg/store/content"
)

// MemoryContentStore implements content.Store using an in-memory map.
//
// Suitable for testing, development, and ephemeral deployments. All
// operations are protected by a read-write mutex; stored and returned byte
// slices are copied so callers can never alias internal state.
type MemoryContentStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryContentStore creates an empty in-memory content store.
func NewMemoryContentStore() *MemoryContentStore {
	return &MemoryContentStore{
		objects: make(map[string][]byte),
	}
}

// WriteContent stores a copy of data under id, overwriting any previous value.
func (store *MemoryContentStore) WriteContent(ctx context.Context, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	store.mu.Lock()
	defer store.mu.Unlock()
	store.objects[id] = buf
	return nil
}

// ReadContent returns a copy of the content stored under id.
func (store *MemoryContentStore) ReadContent(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	data, exists := store.objects[id]
	if !exists {
		return nil, fmt.Errorf("content %s: %w", id, content.ErrContentNotFound)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// Healthcheck always succeeds for an in-memory store.
func (store *MemoryContentStore) Healthcheck(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op for an in-memory store.
func (store *MemoryContentStore) Close() error {
	return nil
}
