package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/repository/memory"
)

func TestStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Add(ctx, "u1", domain.Favourite{Name: "Push Up"}))
	require.NoError(t, store.Add(ctx, "u1", domain.Favourite{Name: "Squat"}))
	require.NoError(t, store.Add(ctx, "u2", domain.Favourite{Name: "Push Up"}))

	t.Run("list preserves insertion order and is per-user", func(t *testing.T) {
		favs, err := store.List(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, favs, 2)
		assert.Equal(t, "Push Up", favs[0].Name)
		assert.Equal(t, "Squat", favs[1].Name)

		favs, err = store.List(ctx, "u2")
		require.NoError(t, err)
		assert.Len(t, favs, 1)
	})

	t.Run("at most one favourite per (user, name)", func(t *testing.T) {
		err := store.Add(ctx, "u1", domain.Favourite{Name: "Push Up"})
		assert.ErrorIs(t, err, apperrors.ErrFavouriteExists)

		favs, err := store.List(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, favs, 2)
	})

	t.Run("unknown user lists empty", func(t *testing.T) {
		favs, err := store.List(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, favs)
	})
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Add(ctx, "u1", domain.Favourite{Name: "Push Up"}))
	require.NoError(t, store.Add(ctx, "u1", domain.Favourite{Name: "Squat"}))

	t.Run("removes only the named entry", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "u1", "Push Up"))

		favs, err := store.List(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, favs, 1)
		assert.Equal(t, "Squat", favs[0].Name)
	})

	t.Run("missing entry", func(t *testing.T) {
		err := store.Remove(ctx, "u1", "Push Up")
		assert.ErrorIs(t, err, apperrors.ErrFavouriteNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := store.Remove(ctx, "nobody", "Push Up")
		assert.ErrorIs(t, err, apperrors.ErrFavouriteNotFound)
	})
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Add(ctx, "u1", domain.Favourite{Name: "Push Up"}))

	require.NoError(t, store.Clear(ctx, "u1"))
	require.NoError(t, store.Clear(ctx, "u1")) // clearing empty is a no-op

	favs, err := store.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, favs)
}
