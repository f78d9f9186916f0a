package badger

import (
	"context"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// CreateUser stores a new user record.
func (store *BadgerEntityStore) CreateUser(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := encodeUser(user)
	if err != nil {
		return entity.NewIO("failed to encode user", err)
	}

	return store.createRaw(keyUser(user.ID), value, "user already exists", user.ID)
}

// GetUser retrieves a user record by id.
func (store *BadgerEntityStore) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := store.getRaw(keyUser(id), "user not found", id)
	if err != nil {
		return nil, err
	}

	user, err := decodeUser(value)
	if err != nil {
		return nil, entity.NewIO("failed to decode user", err)
	}
	return user, nil
}
