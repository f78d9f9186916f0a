package testing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

func (suite *StoreTestSuite) RunFileTests(test *testing.T) {
	test.Run("CreateFile_Success", suite.TestCreateFile_Success)
	test.Run("CreateFile_Duplicate", suite.TestCreateFile_Duplicate)
	test.Run("GetFile_NotFound", suite.TestGetFile_NotFound)
	test.Run("GetFile_ReturnsCopy", suite.TestGetFile_ReturnsCopy)
	test.Run("SetFileParentFolder", suite.TestSetFileParentFolder)
	test.Run("SetFileParentFolder_Detach", suite.TestSetFileParentFolder_Detach)
	test.Run("AddToFileUsers_Idempotent", suite.TestAddToFileUsers_Idempotent)
	test.Run("RemoveFromFileUsers", suite.TestRemoveFromFileUsers)
	test.Run("RemoveFromFileUsers_Absent", suite.TestRemoveFromFileUsers_Absent)
}

// TestCreateFile_Success verifies files round-trip through the store.
func (suite *StoreTestSuite) TestCreateFile_Success(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	file := &entity.File{
		ID:           "file-1",
		Name:         "report.txt",
		ContentID:    "blob-1",
		ParentFolder: "folder-1",
		Size:         42,
	}
	err := store.CreateFile(ctx, file)
	require.NoError(test, err)

	loaded, err := store.GetFile(ctx, "file-1")
	require.NoError(test, err)
	assert.Equal(test, "report.txt", loaded.Name)
	assert.Equal(test, "blob-1", loaded.ContentID)
	assert.Equal(test, "folder-1", loaded.ParentFolder)
	assert.Equal(test, uint64(42), loaded.Size)
	assert.Empty(test, loaded.Users, "New file should have no grants")
}

// TestCreateFile_Duplicate verifies that duplicate file ids are rejected.
func (suite *StoreTestSuite) TestCreateFile_Duplicate(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFile(ctx, &entity.File{ID: "file-1"}))

	err := store.CreateFile(ctx, &entity.File{ID: "file-1"})
	AssertErrorCode(test, entity.ErrAlreadyExists, err)
}

// TestGetFile_NotFound verifies the not-found contract.
func (suite *StoreTestSuite) TestGetFile_NotFound(test *testing.T) {
	store := suite.NewStore(test)

	file, err := store.GetFile(context.Background(), "missing")
	AssertErrorCode(test, entity.ErrNotFound, err)
	assert.Nil(test, file)
}

// TestGetFile_ReturnsCopy verifies mutating a returned record does not leak
// into stored state.
func (suite *StoreTestSuite) TestGetFile_ReturnsCopy(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFile(ctx, &entity.File{ID: "file-1"}))
	require.NoError(test, store.AddToFileUsers(ctx, "file-1", "alice"))

	first, err := store.GetFile(ctx, "file-1")
	require.NoError(test, err)
	first.Name = "mutated"
	first.Users = append(first.Users, "mallory")

	second, err := store.GetFile(ctx, "file-1")
	require.NoError(test, err)
	assert.Empty(test, second.Name)
	assert.ElementsMatch(test, []string{"alice"}, second.Users)
}

// TestSetFileParentFolder verifies parent pointer updates.
func (suite *StoreTestSuite) TestSetFileParentFolder(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFile(ctx, &entity.File{ID: "file-1"}))

	err := store.SetFileParentFolder(ctx, "file-1", "folder-9")
	require.NoError(test, err)

	loaded, err := store.GetFile(ctx, "file-1")
	require.NoError(test, err)
	assert.Equal(test, "folder-9", loaded.ParentFolder)
}

// TestSetFileParentFolder_Detach verifies an empty parent detaches to root.
func (suite *StoreTestSuite) TestSetFileParentFolder_Detach(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFile(ctx, &entity.File{ID: "file-1", ParentFolder: "folder-1"}))

	err := store.SetFileParentFolder(ctx, "file-1", "")
	require.NoError(test, err)

	loaded, err := store.GetFile(ctx, "file-1")
	require.NoError(test, err)
	assert.Empty(test, loaded.ParentFolder)
}

// TestAddToFileUsers_Idempotent verifies the grant set never holds duplicates.
func (suite *StoreTestSuite) TestAddToFileUsers_Idempotent(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFile(ctx, &entity.File{ID: "file-1"}))

	require.NoError(test, store.AddToFileUsers(ctx, "file-1", "alice"))
	require.NoError(test, store.AddToFileUsers(ctx, "file-1", "alice"))
	require.NoError(test, store.AddToFileUsers(ctx, "file-1", "bob"))

	loaded, err := store.GetFile(ctx, "file-1")
	require.NoError(test, err)
	assert.ElementsMatch(test, []string{"alice", "bob"}, loaded.Users,
		"Repeated inserts should leave exactly one entry per user")
}

// TestRemoveFromFileUsers verifies grant removal.
func (suite *StoreTestSuite) TestRemoveFromFileUsers(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFile(ctx, &entity.File{ID: "file-1"}))
	require.NoError(test, store.AddToFileUsers(ctx, "file-1", "alice"))
	require.NoError(test, store.AddToFileUsers(ctx, "file-1", "bob"))

	err := store.RemoveFromFileUsers(ctx, "file-1", "alice")
	require.NoError(test, err)

	loaded, err := store.GetFile(ctx, "file-1")
	require.NoError(test, err)
	assert.ElementsMatch(test, []string{"bob"}, loaded.Users)
}

// TestRemoveFromFileUsers_Absent verifies removing an absent member succeeds.
func (suite *StoreTestSuite) TestRemoveFromFileUsers_Absent(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFile(ctx, &entity.File{ID: "file-1"}))

	err := store.RemoveFromFileUsers(ctx, "file-1", "nobody")
	assert.NoError(test, err, "Removing an absent grant should be a no-op success")
}
