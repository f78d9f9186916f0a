package testing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

func (suite *StoreTestSuite) RunFolderTests(test *testing.T) {
	test.Run("CreateFolder_Success", suite.TestCreateFolder_Success)
	test.Run("CreateFolder_Duplicate", suite.TestCreateFolder_Duplicate)
	test.Run("GetFolder_NotFound", suite.TestGetFolder_NotFound)
	test.Run("SetFolderParentFolder", suite.TestSetFolderParentFolder)
	test.Run("AddToFolderUsers_Idempotent", suite.TestAddToFolderUsers_Idempotent)
	test.Run("RemoveFromFolderUsers", suite.TestRemoveFromFolderUsers)
	test.Run("ChildSets", suite.TestChildSets)
	test.Run("ChildSets_RemoveAbsent", suite.TestChildSets_RemoveAbsent)
}

// TestCreateFolder_Success verifies folders round-trip through the store.
func (suite *StoreTestSuite) TestCreateFolder_Success(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	folder := &entity.Folder{ID: "folder-1", Name: "documents", ParentFolder: "folder-0"}
	err := store.CreateFolder(ctx, folder)
	require.NoError(test, err)

	loaded, err := store.GetFolder(ctx, "folder-1")
	require.NoError(test, err)
	assert.Equal(test, "documents", loaded.Name)
	assert.Equal(test, "folder-0", loaded.ParentFolder)
	assert.Empty(test, loaded.Users)
	assert.Empty(test, loaded.Files)
	assert.Empty(test, loaded.Folders)
}

// TestCreateFolder_Duplicate verifies that duplicate folder ids are rejected.
func (suite *StoreTestSuite) TestCreateFolder_Duplicate(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFolder(ctx, &entity.Folder{ID: "folder-1"}))

	err := store.CreateFolder(ctx, &entity.Folder{ID: "folder-1"})
	AssertErrorCode(test, entity.ErrAlreadyExists, err)
}

// TestGetFolder_NotFound verifies the not-found contract.
func (suite *StoreTestSuite) TestGetFolder_NotFound(test *testing.T) {
	store := suite.NewStore(test)

	folder, err := store.GetFolder(context.Background(), "missing")
	AssertErrorCode(test, entity.ErrNotFound, err)
	assert.Nil(test, folder)
}

// TestSetFolderParentFolder verifies parent pointer updates and detaching.
func (suite *StoreTestSuite) TestSetFolderParentFolder(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFolder(ctx, &entity.Folder{ID: "folder-1"}))

	require.NoError(test, store.SetFolderParentFolder(ctx, "folder-1", "folder-2"))
	loaded, err := store.GetFolder(ctx, "folder-1")
	require.NoError(test, err)
	assert.Equal(test, "folder-2", loaded.ParentFolder)

	require.NoError(test, store.SetFolderParentFolder(ctx, "folder-1", ""))
	loaded, err = store.GetFolder(ctx, "folder-1")
	require.NoError(test, err)
	assert.Empty(test, loaded.ParentFolder)
}

// TestAddToFolderUsers_Idempotent verifies the grant set never holds duplicates.
func (suite *StoreTestSuite) TestAddToFolderUsers_Idempotent(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFolder(ctx, &entity.Folder{ID: "folder-1"}))

	require.NoError(test, store.AddToFolderUsers(ctx, "folder-1", "alice"))
	require.NoError(test, store.AddToFolderUsers(ctx, "folder-1", "alice"))

	loaded, err := store.GetFolder(ctx, "folder-1")
	require.NoError(test, err)
	assert.ElementsMatch(test, []string{"alice"}, loaded.Users)
}

// TestRemoveFromFolderUsers verifies grant removal.
func (suite *StoreTestSuite) TestRemoveFromFolderUsers(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFolder(ctx, &entity.Folder{ID: "folder-1"}))
	require.NoError(test, store.AddToFolderUsers(ctx, "folder-1", "alice"))

	require.NoError(test, store.RemoveFromFolderUsers(ctx, "folder-1", "alice"))

	loaded, err := store.GetFolder(ctx, "folder-1")
	require.NoError(test, err)
	assert.Empty(test, loaded.Users)
}

// TestChildSets verifies the child-file and child-folder set operations.
func (suite *StoreTestSuite) TestChildSets(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFolder(ctx, &entity.Folder{ID: "parent"}))

	require.NoError(test, store.AddToFolderFiles(ctx, "parent", "file-1"))
	require.NoError(test, store.AddToFolderFiles(ctx, "parent", "file-1"))
	require.NoError(test, store.AddToFolderFiles(ctx, "parent", "file-2"))
	require.NoError(test, store.AddToFolderFolders(ctx, "parent", "child-1"))

	loaded, err := store.GetFolder(ctx, "parent")
	require.NoError(test, err)
	assert.ElementsMatch(test, []string{"file-1", "file-2"}, loaded.Files)
	assert.ElementsMatch(test, []string{"child-1"}, loaded.Folders)

	require.NoError(test, store.RemoveFromFolderFiles(ctx, "parent", "file-1"))
	require.NoError(test, store.RemoveFromFolderFolders(ctx, "parent", "child-1"))

	loaded, err = store.GetFolder(ctx, "parent")
	require.NoError(test, err)
	assert.ElementsMatch(test, []string{"file-2"}, loaded.Files)
	assert.Empty(test, loaded.Folders)
}

// TestChildSets_RemoveAbsent verifies removals of absent children succeed.
func (suite *StoreTestSuite) TestChildSets_RemoveAbsent(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	require.NoError(test, store.CreateFolder(ctx, &entity.Folder{ID: "parent"}))

	assert.NoError(test, store.RemoveFromFolderFiles(ctx, "parent", "ghost"))
	assert.NoError(test, store.RemoveFromFolderFolders(ctx, "parent", "ghost"))
}
