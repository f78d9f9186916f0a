package memory

import (
	"context"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// CreateUser stores a new user record.
func (store *MemoryEntityStore) CreateUser(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.users[user.ID]; exists {
		return entity.NewAlreadyExists("user already exists", user.ID)
	}

	store.users[user.ID] = &userData{user: *user}
	return nil
}

// GetUser retrieves a user record by id.
func (store *MemoryEntityStore) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	data, exists := store.users[id]
	if !exists {
		return nil, entity.NewNotFound("user not found", id)
	}

	user := data.user
	return &user, nil
}

// Healthcheck always succeeds: the memory store has no external dependencies.
func (store *MemoryEntityStore) Healthcheck(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op for the memory store.
func (store *MemoryEntityStore) Close() error {
	return nil
}
