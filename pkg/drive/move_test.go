package drive_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/drive"
)

// Moving a file out of a shared ancestry strips access that was only
// derived through that ancestry.
func TestMoveFile_StripsDerivedAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	shared := f.createFolder(t, alice, "shared", "")
	require.NoError(t, f.service.ShareFolder(ctx, alice, shared, bob))
	fileID := f.createFile(t, alice, "doc.txt", shared, nil)

	allowed, err := f.service.CanAccess(ctx, bob, drive.KindFile, fileID)
	require.NoError(t, err)
	require.True(t, allowed)

	require.NoError(t, f.service.MoveFile(ctx, alice, fileID, ""))

	allowed, err = f.service.CanAccess(ctx, bob, drive.KindFile, fileID)
	require.NoError(t, err)
	assert.False(t, allowed, "Derived access should not survive the move")
}

// A direct grant on the file itself survives any move.
func TestMoveFile_DirectGrantSurvives(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	folderID := f.createFolder(t, alice, "docs", "")
	fileID := f.createFile(t, alice, "doc.txt", folderID, nil)
	require.NoError(t, f.service.ShareFile(ctx, alice, fileID, bob))

	require.NoError(t, f.service.MoveFile(ctx, alice, fileID, ""))

	allowed, err := f.service.CanAccess(ctx, bob, drive.KindFile, fileID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

// Moves maintain the parent pointer and both child sets.
func TestMoveFile_UpdatesHierarchy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	src := f.createFolder(t, alice, "src", "")
	dst := f.createFolder(t, alice, "dst", "")
	fileID := f.createFile(t, alice, "doc.txt", src, nil)

	require.NoError(t, f.service.MoveFile(ctx, alice, fileID, dst))

	file, err := f.entities.GetFile(ctx, fileID)
	require.NoError(t, err)
	assert.Equal(t, dst, file.ParentFolder)

	srcFolder, err := f.entities.GetFolder(ctx, src)
	require.NoError(t, err)
	assert.NotContains(t, srcFolder.Files, fileID)

	dstFolder, err := f.entities.GetFolder(ctx, dst)
	require.NoError(t, err)
	assert.Contains(t, dstFolder.Files, fileID)
}

func TestMoveFile_SameParentIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	folderID := f.createFolder(t, alice, "docs", "")
	fileID := f.createFile(t, alice, "doc.txt", folderID, nil)

	require.NoError(t, f.service.MoveFile(ctx, alice, fileID, folderID))

	folder, err := f.entities.GetFolder(ctx, folderID)
	require.NoError(t, err)
	assert.Contains(t, folder.Files, fileID)
}

func TestMoveFolder_SelfMove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	folderID := f.createFolder(t, alice, "docs", "")

	err := f.service.MoveFolder(ctx, alice, folderID, folderID)
	assertCode(t, drive.ErrInvalidOperation, err)
}

// Self-moves are structurally invalid regardless of who asks; the check
// runs before any lookup.
func TestMoveFolder_SelfMoveUnknownActor(t *testing.T) {
	f := newFixture(t)

	err := f.service.MoveFolder(context.Background(), "nobody", "folder-1", "folder-1")
	assertCode(t, drive.ErrInvalidOperation, err)
}

func TestMoveFolder_IntoOwnSubtree(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	a := f.createFolder(t, alice, "a", "")
	b := f.createFolder(t, alice, "b", a)
	c := f.createFolder(t, alice, "c", b)

	err := f.service.MoveFolder(ctx, alice, a, c)
	assertCode(t, drive.ErrInvalidOperation, err)

	// Nothing may have been mutated by the rejected move.
	folder, err := f.entities.GetFolder(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, folder.ParentFolder)
}

func TestMoveFolder_UpdatesHierarchy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	a := f.createFolder(t, alice, "a", "")
	b := f.createFolder(t, alice, "b", "")
	child := f.createFolder(t, alice, "child", a)

	require.NoError(t, f.service.MoveFolder(ctx, alice, child, b))

	moved, err := f.entities.GetFolder(ctx, child)
	require.NoError(t, err)
	assert.Equal(t, b, moved.ParentFolder)

	oldParent, err := f.entities.GetFolder(ctx, a)
	require.NoError(t, err)
	assert.NotContains(t, oldParent.Folders, child)

	newParent, err := f.entities.GetFolder(ctx, b)
	require.NoError(t, err)
	assert.Contains(t, newParent.Folders, child)
}

func TestMoveFolder_ToRoot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	a := f.createFolder(t, alice, "a", "")
	child := f.createFolder(t, alice, "child", a)

	require.NoError(t, f.service.MoveFolder(ctx, alice, child, ""))

	moved, err := f.entities.GetFolder(ctx, child)
	require.NoError(t, err)
	assert.Empty(t, moved.ParentFolder)
}

func TestMoveFile_UnknownDestination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	fileID := f.createFile(t, alice, "doc.txt", "", nil)

	err := f.service.MoveFile(ctx, alice, fileID, "missing")
	assertCode(t, drive.ErrNotFound, err)
}
