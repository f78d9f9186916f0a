package drive_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/drive"
	"github.com/marmos91/dittodrive/pkg/store/entity"
	entitymemory "github.com/marmos91/dittodrive/pkg/store/entity/memory"
	contentmemory "github.com/marmos91/dittodrive/pkg/store/content/memory"
)

// fixture bundles the engine with its backing stores so tests can assert on
// raw stored state.
type fixture struct {
	service  *drive.Service
	entities entity.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	entities := entitymemory.NewMemoryEntityStore()
	return &fixture{
		service:  drive.NewService(entities, contentmemory.NewMemoryContentStore()),
		entities: entities,
	}
}

func (f *fixture) createUser(t *testing.T, id string) string {
	t.Helper()
	user, err := f.service.CreateUser(context.Background(), id)
	require.NoError(t, err)
	return user.ID
}

func (f *fixture) createFolder(t *testing.T, actorID, name, parentID string) string {
	t.Helper()
	folder, err := f.service.CreateFolder(context.Background(), actorID, name, parentID)
	require.NoError(t, err)
	return folder.ID
}

func (f *fixture) createFile(t *testing.T, actorID, name, parentID string, data []byte) string {
	t.Helper()
	file, err := f.service.CreateFile(context.Background(), actorID, name, parentID, data)
	require.NoError(t, err)
	return file.ID
}

func assertCode(t *testing.T, code drive.ErrorCode, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, drive.IsCode(err, code), "expected %s, got %v", code, err)
}
