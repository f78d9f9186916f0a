package memory

import (
	"context"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// CreateFolder stores a new folder record. Any Users, Files or Folders listed
// on the record are loaded into the corresponding sets (deduplicated).
func (store *MemoryEntityStore) CreateFolder(ctx context.Context, folder *entity.Folder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.folders[folder.ID]; exists {
		return entity.NewAlreadyExists("folder already exists", folder.ID)
	}

	record := *folder
	record.Users = nil
	record.Files = nil
	record.Folders = nil
	store.folders[folder.ID] = &folderData{
		folder:  record,
		users:   sliceToSet(folder.Users),
		files:   sliceToSet(folder.Files),
		folders: sliceToSet(folder.Folders),
	}
	return nil
}

// GetFolder retrieves a copy of a folder record by id.
func (store *MemoryEntityStore) GetFolder(ctx context.Context, id string) (*entity.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	data, exists := store.folders[id]
	if !exists {
		return nil, entity.NewNotFound("folder not found", id)
	}

	folder := data.folder
	folder.Users = setToSlice(data.users)
	folder.Files = setToSlice(data.files)
	folder.Folders = setToSlice(data.folders)
	return &folder, nil
}

// SetFolderParentFolder updates a folder's parent pointer.
func (store *MemoryEntityStore) SetFolderParentFolder(ctx context.Context, id, parentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	data, exists := store.folders[id]
	if !exists {
		return entity.NewNotFound("folder not found", id)
	}

	data.folder.ParentFolder = parentID
	return nil
}

// AddToFolderUsers inserts userID into a folder's direct-grant set.
func (store *MemoryEntityStore) AddToFolderUsers(ctx context.Context, id, userID string) error {
	return store.mutateFolder(ctx, id, func(data *folderData) {
		data.users[userID] = struct{}{}
	})
}

// RemoveFromFolderUsers removes userID from a folder's direct-grant set.
func (store *MemoryEntityStore) RemoveFromFolderUsers(ctx context.Context, id, userID string) error {
	return store.mutateFolder(ctx, id, func(data *folderData) {
		delete(data.users, userID)
	})
}

// AddToFolderFiles inserts fileID into a folder's child-file set.
func (store *MemoryEntityStore) AddToFolderFiles(ctx context.Context, folderID, fileID string) error {
	return store.mutateFolder(ctx, folderID, func(data *folderData) {
		data.files[fileID] = struct{}{}
	})
}

// RemoveFromFolderFiles removes fileID from a folder's child-file set.
func (store *MemoryEntityStore) RemoveFromFolderFiles(ctx context.Context, folderID, fileID string) error {
	return store.mutateFolder(ctx, folderID, func(data *folderData) {
		delete(data.files, fileID)
	})
}

// AddToFolderFolders inserts childID into a folder's child-folder set.
func (store *MemoryEntityStore) AddToFolderFolders(ctx context.Context, folderID, childID string) error {
	return store.mutateFolder(ctx, folderID, func(data *folderData) {
		data.folders[childID] = struct{}{}
	})
}

// RemoveFromFolderFolders removes childID from a folder's child-folder set.
func (store *MemoryEntityStore) RemoveFromFolderFolders(ctx context.Context, folderID, childID string) error {
	return store.mutateFolder(ctx, folderID, func(data *folderData) {
		delete(data.folders, childID)
	})
}

// mutateFolder applies a set mutation to a folder under the write lock.
func (store *MemoryEntityStore) mutateFolder(ctx context.Context, id string, mutate func(*folderData)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	data, exists := store.folders[id]
	if !exists {
		return entity.NewNotFound("folder not found", id)
	}

	mutate(data)
	return nil
}
