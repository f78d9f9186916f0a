// Package content defines the content store contract.
//
// The content store manages only raw file bytes. Everything else about a
// file (its name, parent folder, grants) lives in the entity store, which
// references content through an opaque ContentID. The split lets metadata
// and bytes scale and persist independently: an in-memory hierarchy can
// point at S3-held contents and vice versa.
package content

import (
	"context"
	"errors"
)

// ErrContentNotFound indicates the requested content does not exist.
var ErrContentNotFound = errors.New("content not found")

// Store provides whole-object content storage keyed by an opaque id.
//
// Contents in this system are written once at file creation and read back
// whole, so the contract is deliberately small: no partial reads, no
// truncation, no deletion (unreferenced content is an accepted leak until a
// collector exists).
//
// Implementations must be safe for concurrent use. Writing the same id twice
// overwrites (last write wins).
type Store interface {
	// WriteContent stores data under id, overwriting any previous value.
	WriteContent(ctx context.Context, id string, data []byte) error

	// ReadContent returns the full content stored under id.
	// Returns an error wrapping ErrContentNotFound when id is absent.
	ReadContent(ctx context.Context, id string) ([]byte, error)

	// Healthcheck verifies the backend is reachable.
	Healthcheck(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
