package badger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/store/entity"
	"github.com/marmos91/dittodrive/pkg/store/entity/badger"
	storetesting "github.com/marmos91/dittodrive/pkg/store/entity/testing"
)

func TestBadgerEntityStore(t *testing.T) {
	suite := &storetesting.StoreTestSuite{
		NewStore: func(t *testing.T) entity.Store {
			store, err := badger.NewBadgerEntityStore(context.Background(), badger.BadgerEntityStoreConfig{
				DBPath: t.TempDir(),
			})
			require.NoError(t, err)
			t.Cleanup(func() {
				require.NoError(t, store.Close())
			})
			return store
		},
	}
	suite.Run(t)
}

func TestBadgerEntityStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir()

	store, err := badger.NewBadgerEntityStore(ctx, badger.BadgerEntityStoreConfig{DBPath: path})
	require.NoError(t, err)

	require.NoError(t, store.CreateFolder(ctx, &entity.Folder{ID: "folder-1", Name: "persisted"}))
	require.NoError(t, store.AddToFolderUsers(ctx, "folder-1", "alice"))
	require.NoError(t, store.Close())

	store, err = badger.NewBadgerEntityStore(ctx, badger.BadgerEntityStoreConfig{DBPath: path})
	require.NoError(t, err)
	defer store.Close()

	folder, err := store.GetFolder(ctx, "folder-1")
	require.NoError(t, err)
	require.Equal(t, "persisted", folder.Name)
	require.Equal(t, []string{"alice"}, folder.Users)
}

func TestNewBadgerEntityStore_MissingPath(t *testing.T) {
	_, err := badger.NewBadgerEntityStore(context.Background(), badger.BadgerEntityStoreConfig{})
	require.Error(t, err)
}
