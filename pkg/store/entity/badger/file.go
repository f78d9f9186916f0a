package badger

import (
	"context"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// CreateFile stores a new file record.
func (store *BadgerEntityStore) CreateFile(ctx context.Context, file *entity.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := encodeFile(file)
	if err != nil {
		return entity.NewIO("failed to encode file", err)
	}

	return store.createRaw(keyFile(file.ID), value, "file already exists", file.ID)
}

// GetFile retrieves a file record by id.
func (store *BadgerEntityStore) GetFile(ctx context.Context, id string) (*entity.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := store.getRaw(keyFile(id), "file not found", id)
	if err != nil {
		return nil, err
	}

	file, err := decodeFile(value)
	if err != nil {
		return nil, entity.NewIO("failed to decode file", err)
	}
	return file, nil
}

// SetFileParentFolder updates a file's parent pointer. The whole record is
// rewritten in one transaction, so the pointer change is atomic.
func (store *BadgerEntityStore) SetFileParentFolder(ctx context.Context, id, parentID string) error {
	return store.updateFile(ctx, id, func(file *entity.File) {
		file.ParentFolder = parentID
	})
}

// AddToFileUsers inserts userID into a file's direct-grant set.
func (store *BadgerEntityStore) AddToFileUsers(ctx context.Context, id, userID string) error {
	return store.updateFile(ctx, id, func(file *entity.File) {
		file.Users = addToSet(file.Users, userID)
	})
}

// RemoveFromFileUsers removes userID from a file's direct-grant set.
func (store *BadgerEntityStore) RemoveFromFileUsers(ctx context.Context, id, userID string) error {
	return store.updateFile(ctx, id, func(file *entity.File) {
		file.Users = removeFromSet(file.Users, userID)
	})
}

// updateFile applies a mutation to a file record inside one transaction.
func (store *BadgerEntityStore) updateFile(ctx context.Context, id string, mutate func(*entity.File)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return store.updateRaw(keyFile(id), "file not found", id, func(current []byte) ([]byte, error) {
		file, err := decodeFile(current)
		if err != nil {
			return nil, err
		}
		mutate(file)
		return encodeFile(file)
	})
}
