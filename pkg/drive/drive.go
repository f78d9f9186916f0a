// Package drive implements the authorization and hierarchy engine.
//
// The engine manages a forest of folders and files with per-node direct
// grant sets. Access is resolved live: a user can reach a node when their id
// appears in the node's own grant set or in the grant set of any ancestor
// folder. Nothing is cached or precomputed, so moving a node immediately
// changes which users derive access through its ancestry.
//
// Two grant-materialization rules shape the data:
//   - Creating a node grants its creator directly on that node.
//   - Sharing a folder writes the target user into the grant set of every
//     folder and file in the subtree, so the grant survives later moves of
//     any of those nodes.
//
// All operations validate every precondition before the first write. The
// entity store only guarantees per-row atomicity, so the fixed mutation
// order inside each operation is what keeps concurrent readers coherent.
package drive

import (
	"context"

	"github.com/marmos91/dittodrive/pkg/store/content"
	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// Service is the authorization and hierarchy engine.
//
// It coordinates the entity store (records, grants, hierarchy) and the
// content store (file bytes). Service is safe for concurrent use as long as
// both stores are.
type Service struct {
	entities entity.Store
	contents content.Store
}

// NewService creates an engine over the given stores.
func NewService(entities entity.Store, contents content.Store) *Service {
	return &Service{
		entities: entities,
		contents: contents,
	}
}

// Healthcheck verifies both backing stores are reachable.
func (service *Service) Healthcheck(ctx context.Context) error {
	if err := service.entities.Healthcheck(ctx); err != nil {
		return NewStoreError("entity store unhealthy", err)
	}
	if err := service.contents.Healthcheck(ctx); err != nil {
		return NewStoreError("content store unhealthy", err)
	}
	return nil
}
