package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/store/content"
)

func TestMemoryContentStore_WriteRead(t *testing.T) {
	store := NewMemoryContentStore()
	ctx := context.Background()

	require.NoError(t, store.WriteContent(ctx, "blob-1", []byte("hello")))

	data, err := store.ReadContent(ctx, "blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestMemoryContentStore_Overwrite(t *testing.T) {
	store := NewMemoryContentStore()
	ctx := context.Background()

	require.NoError(t, store.WriteContent(ctx, "blob-1", []byte("first")))
	require.NoError(t, store.WriteContent(ctx, "blob-1", []byte("second")))

	data, err := store.ReadContent(ctx, "blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestMemoryContentStore_NotFound(t *testing.T) {
	store := NewMemoryContentStore()

	_, err := store.ReadContent(context.Background(), "missing")
	assert.ErrorIs(t, err, content.ErrContentNotFound)
}

func TestMemoryContentStore_ReturnsCopy(t *testing.T) {
	store := NewMemoryContentStore()
	ctx := context.Background()

	original := []byte("immutable")
	require.NoError(t, store.WriteContent(ctx, "blob-1", original))
	original[0] = 'X'

	first, err := store.ReadContent(ctx, "blob-1")
	require.NoError(t, err)
	first[0] = 'Y'

	second, err := store.ReadContent(ctx, "blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), second)
}
