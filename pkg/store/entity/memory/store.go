package memory

import (
	"sync"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// MemoryEntityStore implements entity.Store using in-memory maps.
//
// This implementation is suitable for testing, development, and ephemeral
// deployments where persistence is not required. It is the reference
// implementation for the entity store contract: the shared test suite in
// pkg/store/entity/testing runs against it and the persistent backends alike.
//
// Thread Safety:
// All operations are protected by a single read-write mutex. Queries take a
// read lock and mutations a write lock, which gives per-operation (per-row)
// atomicity, the only guarantee the engine relies on.
//
// Storage Model:
// Records are kept in three id-keyed maps. Grant sets and child sets are
// stored as map[string]struct{} internally so inserts and removals are
// naturally idempotent; they are converted to sorted slices on read. Reads
// return copies, so callers can never mutate stored state through a returned
// record.
type MemoryEntityStore struct {
	mu sync.RWMutex

	// users maps user id to record
	users map[string]*userData

	// files maps file id to record
	files map[string]*fileData

	// folders maps folder id to record
	folders map[string]*folderData
}

type userData struct {
	user entity.User
}

type fileData struct {
	file entity.File

	// users is the direct-grant set
	users map[string]struct{}
}

type folderData struct {
	folder entity.Folder

	// users is the direct-grant set
	users map[string]struct{}

	// files and folders are the child id sets
	files   map[string]struct{}
	folders map[string]struct{}
}

// NewMemoryEntityStore creates an empty in-memory entity store ready for
// concurrent use.
func NewMemoryEntityStore() *MemoryEntityStore {
	return &MemoryEntityStore{
		users:   make(map[string]*userData),
		files:   make(map[string]*fileData),
		folders: make(map[string]*folderData),
	}
}
