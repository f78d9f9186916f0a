package memory

import (
	"context"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// CreateFile stores a new file record. Any Users listed on the record are
// loaded into the grant set (deduplicated).
func (store *MemoryEntityStore) CreateFile(ctx context.Context, file *entity.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.files[file.ID]; exists {
		return entity.NewAlreadyExists("file already exists", file.ID)
	}

	record := *file
	record.Users = nil
	store.files[file.ID] = &fileData{
		file:  record,
		users: sliceToSet(file.Users),
	}
	return nil
}

// GetFile retrieves a copy of a file record by id.
func (store *MemoryEntityStore) GetFile(ctx context.Context, id string) (*entity.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	data, exists := store.files[id]
	if !exists {
		return nil, entity.NewNotFound("file not found", id)
	}

	file := data.file
	file.Users = setToSlice(data.users)
	return &file, nil
}

// SetFileParentFolder updates a file's parent pointer. The pointer is a
// single field write, so readers see either the old or the new value.
func (store *MemoryEntityStore) SetFileParentFolder(ctx context.Context, id, parentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	data, exists := store.files[id]
	if !exists {
		return entity.NewNotFound("file not found", id)
	}

	data.file.ParentFolder = parentID
	return nil
}

// AddToFileUsers inserts userID into a file's direct-grant set.
func (store *MemoryEntityStore) AddToFileUsers(ctx context.Context, id, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	data, exists := store.files[id]
	if !exists {
		return entity.NewNotFound("file not found", id)
	}

	data.users[userID] = struct{}{}
	return nil
}

// RemoveFromFileUsers removes userID from a file's direct-grant set.
func (store *MemoryEntityStore) RemoveFromFileUsers(ctx context.Context, id, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	data, exists := store.files[id]
	if !exists {
		return entity.NewNotFound("file not found", id)
	}

	delete(data.users, userID)
	return nil
}
