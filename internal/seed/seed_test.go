package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/drive"
	contentmemory "github.com/marmos91/dittodrive/pkg/store/content/memory"
	entitymemory "github.com/marmos91/dittodrive/pkg/store/entity/memory"
)

const sampleSeed = `
users:
  - id: alice
  - id: bob
folders:
  - name: shared
    owner: alice
    share_with: [bob]
    folders:
      - name: reports
        owner: alice
    files:
      - name: readme.txt
        owner: alice
        contents: "welcome"
files:
  - name: scratch.txt
    owner: alice
    contents: "notes"
`

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func newService() *drive.Service {
	return drive.NewService(entitymemory.NewMemoryEntityStore(), contentmemory.NewMemoryContentStore())
}

func TestLoad(t *testing.T) {
	spec, err := Load(writeSeedFile(t, sampleSeed))
	require.NoError(t, err)

	assert.Len(t, spec.Users, 2)
	require.Len(t, spec.Folders, 1)
	assert.Equal(t, "shared", spec.Folders[0].Name)
	assert.Equal(t, []string{"bob"}, spec.Folders[0].ShareWith)
	assert.Len(t, spec.Folders[0].Folders, 1)
	assert.Len(t, spec.Folders[0].Files, 1)
	assert.Len(t, spec.Files, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply_BuildsHierarchy(t *testing.T) {
	spec, err := Load(writeSeedFile(t, sampleSeed))
	require.NoError(t, err)

	service := newService()
	ctx := context.Background()
	result, err := Apply(ctx, service, spec)
	require.NoError(t, err)

	require.Contains(t, result.Folders, "shared")
	require.Contains(t, result.Folders, "shared/reports")
	require.Contains(t, result.Files, "shared/readme.txt")
	require.Contains(t, result.Files, "scratch.txt")

	file, data, err := service.GetFile(ctx, "alice", result.Files["shared/readme.txt"])
	require.NoError(t, err)
	assert.Equal(t, "readme.txt", file.Name)
	assert.Equal(t, []byte("welcome"), data)
}

func TestApply_ShareReachesSubtree(t *testing.T) {
	spec, err := Load(writeSeedFile(t, sampleSeed))
	require.NoError(t, err)

	service := newService()
	ctx := context.Background()
	result, err := Apply(ctx, service, spec)
	require.NoError(t, err)

	for path, folderID := range result.Folders {
		allowed, err := service.CanAccess(ctx, "bob", drive.KindFolder, folderID)
		require.NoError(t, err)
		assert.True(t, allowed, "bob should reach folder %q", path)
	}

	_, _, err = service.GetFile(ctx, "bob", result.Files["shared/readme.txt"])
	require.NoError(t, err)

	// The root-level file was never shared.
	_, _, err = service.GetFile(ctx, "bob", result.Files["scratch.txt"])
	require.Error(t, err)
	assert.True(t, drive.IsCode(err, drive.ErrForbidden))
}

func TestApply_Rerun(t *testing.T) {
	spec := &Spec{Users: []UserSpec{{ID: "alice"}}}
	service := newService()
	ctx := context.Background()

	_, err := Apply(ctx, service, spec)
	require.NoError(t, err)
	_, err = Apply(ctx, service, spec)
	require.NoError(t, err, "Existing users should be skipped")
}

func TestApply_UnknownOwner(t *testing.T) {
	spec := &Spec{
		Folders: []FolderSpec{{Name: "orphan", Owner: "ghost"}},
	}

	_, err := Apply(context.Background(), newService(), spec)
	assert.Error(t, err)
}
