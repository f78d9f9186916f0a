package drive

import (
	"context"

	"github.com/marmos91/dittodrive/internal/logger"
)

// MoveFile reparents a file to toFolderID (empty means the root).
//
// The actor must be able to reach both the file and the destination folder.
// Grant sets are never touched: a user whose only path to the file ran
// through the old ancestry loses access the moment the pointer changes,
// while direct grants on the file survive.
func (service *Service) MoveFile(ctx context.Context, actorID, fileID, toFolderID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := service.requireAccess(ctx, actorID, KindFile, fileID); err != nil {
		return err
	}
	if toFolderID != "" {
		if err := service.requireAccess(ctx, actorID, KindFolder, toFolderID); err != nil {
			return err
		}
	}

	file, err := service.entities.GetFile(ctx, fileID)
	if err != nil {
		return translateStoreError(err, "failed to load file")
	}
	if file.ParentFolder == toFolderID {
		return nil
	}

	// Fixed mutation order: detach from the old parent, flip the pointer,
	// attach to the new parent. A concurrent reader sees the file under the
	// old parent or the new one, never both.
	if file.ParentFolder != "" {
		if err := service.entities.RemoveFromFolderFiles(ctx, file.ParentFolder, fileID); err != nil {
			return translateStoreError(err, "failed to detach file from old parent")
		}
	}
	if err := service.entities.SetFileParentFolder(ctx, fileID, toFolderID); err != nil {
		return translateStoreError(err, "failed to update file parent")
	}
	if toFolderID != "" {
		if err := service.entities.AddToFolderFiles(ctx, toFolderID, fileID); err != nil {
			return translateStoreError(err, "failed to attach file to new parent")
		}
	}

	logger.Info("moved file %s from folder %q to folder %q", fileID, file.ParentFolder, toFolderID)
	return nil
}

// MoveFolder reparents a folder to toFolderID (empty means the root).
//
// Moving a folder into itself or into its own subtree is rejected as
// ErrInvalidOperation; the self-move case is rejected before any lookups.
// As with files, grant sets are never touched.
func (service *Service) MoveFolder(ctx context.Context, actorID, folderID, toFolderID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if folderID == toFolderID {
		return NewInvalidOperation("cannot move a folder into itself", folderID)
	}

	if err := service.requireAccess(ctx, actorID, KindFolder, folderID); err != nil {
		return err
	}
	if toFolderID != "" {
		if err := service.requireAccess(ctx, actorID, KindFolder, toFolderID); err != nil {
			return err
		}

		cycle, err := service.wouldCreateCycle(ctx, folderID, toFolderID)
		if err != nil {
			return err
		}
		if cycle {
			return NewInvalidOperation("cannot move a folder into its own subtree", folderID)
		}
	}

	folder, err := service.entities.GetFolder(ctx, folderID)
	if err != nil {
		return translateStoreError(err, "failed to load folder")
	}
	if folder.ParentFolder == toFolderID {
		return nil
	}

	if folder.ParentFolder != "" {
		if err := service.entities.RemoveFromFolderFolders(ctx, folder.ParentFolder, folderID); err != nil {
			return translateStoreError(err, "failed to detach folder from old parent")
		}
	}
	if err := service.entities.SetFolderParentFolder(ctx, folderID, toFolderID); err != nil {
		return translateStoreError(err, "failed to update folder parent")
	}
	if toFolderID != "" {
		if err := service.entities.AddToFolderFolders(ctx, toFolderID, folderID); err != nil {
			return translateStoreError(err, "failed to attach folder to new parent")
		}
	}

	logger.Info("moved folder %s from folder %q to folder %q", folderID, folder.ParentFolder, toFolderID)
	return nil
}

// wouldCreateCycle reports whether reparenting folderID under destination
// would make the folder its own ancestor. It walks parent pointers up from
// the destination; finding folderID on the way means the destination sits
// inside the folder's subtree.
func (service *Service) wouldCreateCycle(ctx context.Context, folderID, destination string) (bool, error) {
	visited := make(map[string]struct{})
	current := destination

	for current != "" {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if current == folderID {
			return true, nil
		}
		if _, seen := visited[current]; seen {
			return false, NewStoreError("parent chain contains a cycle", nil)
		}
		visited[current] = struct{}{}

		folder, err := service.entities.GetFolder(ctx, current)
		if err != nil {
			return false, translateStoreError(err, "failed to load ancestor folder")
		}
		current = folder.ParentFolder
	}

	return false, nil
}
