package drive

import (
	"context"

	"github.com/marmos91/dittodrive/internal/logger"
)

// ShareFile grants targetUserID direct access to a file.
//
// The actor must be able to reach the file and the target user must exist.
// Sharing is idempotent: repeating the grant leaves the set unchanged.
func (service *Service) ShareFile(ctx context.Context, actorID, fileID, targetUserID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := service.requireAccess(ctx, actorID, KindFile, fileID); err != nil {
		return err
	}
	if _, err := service.entities.GetUser(ctx, targetUserID); err != nil {
		return translateStoreError(err, "failed to load target user")
	}

	if err := service.entities.AddToFileUsers(ctx, fileID, targetUserID); err != nil {
		return translateStoreError(err, "failed to grant file access")
	}

	logger.Info("shared file %s with user %s", fileID, targetUserID)
	return nil
}

// ShareFolder grants targetUserID direct access to a folder and everything
// beneath it.
//
// The grant is materialized: the target's id is written into the grant set
// of the folder, every descendant folder, and every descendant file. Each
// node then carries the grant independently, so later moves of any part of
// the subtree never revoke it. Sharing is idempotent per node.
//
// The subtree is traversed with an explicit worklist; membership snapshots
// are taken as each folder is visited, so nodes moved in concurrently may or
// may not receive the grant.
func (service *Service) ShareFolder(ctx context.Context, actorID, folderID, targetUserID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := service.requireAccess(ctx, actorID, KindFolder, folderID); err != nil {
		return err
	}
	if _, err := service.entities.GetUser(ctx, targetUserID); err != nil {
		return translateStoreError(err, "failed to load target user")
	}

	granted := 0
	pending := []string{folderID}
	visited := make(map[string]struct{})

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		folder, err := service.entities.GetFolder(ctx, current)
		if err != nil {
			return translateStoreError(err, "failed to load folder in subtree")
		}

		if err := service.entities.AddToFolderUsers(ctx, current, targetUserID); err != nil {
			return translateStoreError(err, "failed to grant folder access")
		}
		granted++

		for _, fileID := range folder.Files {
			if err := service.entities.AddToFileUsers(ctx, fileID, targetUserID); err != nil {
				return translateStoreError(err, "failed to grant file access")
			}
			granted++
		}

		pending = append(pending, folder.Folders...)
	}

	logger.Info("shared folder %s with user %s (%d grants)", folderID, targetUserID, granted)
	return nil
}
