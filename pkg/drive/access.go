package drive

import (
	"context"
	"fmt"

	"github.com/marmos91/dittodrive/internal/logger"
)

// NodeKind distinguishes the two node types of the hierarchy.
type NodeKind string

const (
	KindFile   NodeKind = "file"
	KindFolder NodeKind = "folder"
)

// CanAccess reports whether userID can reach the given node.
//
// Access is resolved live against current state: the user can reach the node
// when their id is in the node's direct grant set or in the grant set of any
// ancestor folder, walking parent pointers up to the root. No result is
// cached.
//
// Returns ErrNotFound when the user or the node does not exist. A missing
// user is an error, not a denial.
func (service *Service) CanAccess(ctx context.Context, userID string, kind NodeKind, nodeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := service.entities.GetUser(ctx, userID); err != nil {
		return false, translateStoreError(err, "failed to load user")
	}

	var parentID string
	switch kind {
	case KindFile:
		file, err := service.entities.GetFile(ctx, nodeID)
		if err != nil {
			return false, translateStoreError(err, "failed to load file")
		}
		if file.HasUser(userID) {
			return true, nil
		}
		parentID = file.ParentFolder

	case KindFolder:
		folder, err := service.entities.GetFolder(ctx, nodeID)
		if err != nil {
			return false, translateStoreError(err, "failed to load folder")
		}
		if folder.HasUser(userID) {
			return true, nil
		}
		parentID = folder.ParentFolder

	default:
		return false, NewInvalidOperation(fmt.Sprintf("unknown node kind %q", kind), nodeID)
	}

	// Walk the ancestor chain. Visited guards against a corrupted parent
	// chain looping forever; the cycle guard keeps well-formed stores
	// acyclic.
	visited := map[string]struct{}{nodeID: {}}
	for parentID != "" {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if _, seen := visited[parentID]; seen {
			logger.Error("parent chain cycle detected at folder %s", parentID)
			return false, NewStoreError("parent chain contains a cycle", nil)
		}
		visited[parentID] = struct{}{}

		folder, err := service.entities.GetFolder(ctx, parentID)
		if err != nil {
			return false, translateStoreError(err, "failed to load ancestor folder")
		}
		if folder.HasUser(userID) {
			return true, nil
		}
		parentID = folder.ParentFolder
	}

	return false, nil
}

// requireAccess returns ErrForbidden when userID cannot reach the node, and
// propagates lookup failures unchanged.
func (service *Service) requireAccess(ctx context.Context, userID string, kind NodeKind, nodeID string) error {
	allowed, err := service.CanAccess(ctx, userID, kind, nodeID)
	if err != nil {
		return err
	}
	if !allowed {
		return NewForbidden(fmt.Sprintf("user %s has no access to %s", userID, kind), nodeID)
	}
	return nil
}
