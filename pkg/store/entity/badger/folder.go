package badger

import (
	"context"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// CreateFolder stores a new folder record.
func (store *BadgerEntityStore) CreateFolder(ctx context.Context, folder *entity.Folder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := encodeFolder(folder)
	if err != nil {
		return entity.NewIO("failed to encode folder", err)
	}

	return store.createRaw(keyFolder(folder.ID), value, "folder already exists", folder.ID)
}

// GetFolder retrieves a folder record by id.
func (store *BadgerEntityStore) GetFolder(ctx context.Context, id string) (*entity.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := store.getRaw(keyFolder(id), "folder not found", id)
	if err != nil {
		return nil, err
	}

	folder, err := decodeFolder(value)
	if err != nil {
		return nil, entity.NewIO("failed to decode folder", err)
	}
	return folder, nil
}

// SetFolderParentFolder updates a folder's parent pointer.
func (store *BadgerEntityStore) SetFolderParentFolder(ctx context.Context, id, parentID string) error {
	return store.updateFolder(ctx, id, func(folder *entity.Folder) {
		folder.ParentFolder = parentID
	})
}

// AddToFolderUsers inserts userID into a folder's direct-grant set.
func (store *BadgerEntityStore) AddToFolderUsers(ctx context.Context, id, userID string) error {
	return store.updateFolder(ctx, id, func(folder *entity.Folder) {
		folder.Users = addToSet(folder.Users, userID)
	})
}

// RemoveFromFolderUsers removes userID from a folder's direct-grant set.
func (store *BadgerEntityStore) RemoveFromFolderUsers(ctx context.Context, id, userID string) error {
	return store.updateFolder(ctx, id, func(folder *entity.Folder) {
		folder.Users = removeFromSet(folder.Users, userID)
	})
}

// AddToFolderFiles inserts fileID into a folder's child-file set.
func (store *BadgerEntityStore) AddToFolderFiles(ctx context.Context, folderID, fileID string) error {
	return store.updateFolder(ctx, folderID, func(folder *entity.Folder) {
		folder.Files = addToSet(folder.Files, fileID)
	})
}

// RemoveFromFolderFiles removes fileID from a folder's child-file set.
func (store *BadgerEntityStore) RemoveFromFolderFiles(ctx context.Context, folderID, fileID string) error {
	return store.updateFolder(ctx, folderID, func(folder *entity.Folder) {
		folder.Files = removeFromSet(folder.Files, fileID)
	})
}

// AddToFolderFolders inserts childID into a folder's child-folder set.
func (store *BadgerEntityStore) AddToFolderFolders(ctx context.Context, folderID, childID string) error {
	return store.updateFolder(ctx, folderID, func(folder *entity.Folder) {
		folder.Folders = addToSet(folder.Folders, childID)
	})
}

// RemoveFromFolderFolders removes childID from a folder's child-folder set.
func (store *BadgerEntityStore) RemoveFromFolderFolders(ctx context.Context, folderID, childID string) error {
	return store.updateFolder(ctx, folderID, func(folder *entity.Folder) {
		folder.Folders = removeFromSet(folder.Folders, childID)
	})
}

// updateFolder applies a mutation to a folder record inside one transaction.
func (store *BadgerEntityStore) updateFolder(ctx context.Context, id string, mutate func(*entity.Folder)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return store.updateRaw(keyFolder(id), "folder not found", id, func(current []byte) ([]byte, error) {
		folder, err := decodeFolder(current)
		if err != nil {
			return nil, err
		}
		mutate(folder)
		return encodeFolder(folder)
	})
}
