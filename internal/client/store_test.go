package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadFetchesOnce(t *testing.T) {
	calls := 0
	store := NewStore(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	})

	items, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)

	_, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestStore_RefreshRefetches(t *testing.T) {
	calls := 0
	store := NewStore(func(ctx context.Context) ([]int, error) {
		calls++
		return []int{calls}, nil
	})

	_, err := store.Load(context.Background())
	require.NoError(t, err)

	items, err := store.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, items)
	assert.Equal(t, 2, calls)
}

func TestStore_FailedRefreshKeepsPriorItems(t *testing.T) {
	shouldFail := false
	store := NewStore(func(ctx context.Context) ([]string, error) {
		if shouldFail {
			return nil, assert.AnError
		}
		return []string{"kept"}, nil
	})

	_, err := store.Load(context.Background())
	require.NoError(t, err)

	shouldFail = true
	items, err := store.Refresh(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []string{"kept"}, items)
	assert.Equal(t, []string{"kept"}, store.Items())
	assert.Error(t, store.Err())

	// A later successful refresh clears the error
	shouldFail = false
	_, err = store.Refresh(context.Background())
	require.NoError(t, err)
	assert.NoError(t, store.Err())
}

func TestStore_ItemsEmptyBeforeLoad(t *testing.T) {
	store := NewStore(func(ctx context.Context) ([]string, error) {
		return []string{"x"}, nil
	})

	assert.Empty(t, store.Items())
	assert.False(t, store.Loading())
}
