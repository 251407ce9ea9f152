package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/domain"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/repository/memory"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

func newUser(id, email string) *domain.User {
	return &domain.User{
		ID:           id,
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	require.NoError(t, store.Create(ctx, newUser("u1", "a@b.com")))

	t.Run("get by email is case-insensitive", func(t *testing.T) {
		user, err := store.GetByEmail(ctx, "A@B.COM")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("get by id", func(t *testing.T) {
		user, err := store.GetByID(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "a@b.com", user.Email)
	})

	t.Run("missing user yields nil, nil", func(t *testing.T) {
		user, err := store.GetByEmail(ctx, "nobody@b.com")
		require.NoError(t, err)
		assert.Nil(t, user)

		user, err = store.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := store.Create(ctx, newUser("u2", "a@b.com"))
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyInUse)

		user, err := store.GetByID(ctx, "u2")
		require.NoError(t, err)
		assert.Nil(t, user, "losing create must not leave a record behind")
	})
}

func TestUserStore_Update(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	require.NoError(t, store.Create(ctx, newUser("u1", "a@b.com")))
	require.NoError(t, store.Create(ctx, newUser("u2", "c@d.com")))

	t.Run("email change reindexes", func(t *testing.T) {
		u, err := store.GetByID(ctx, "u1")
		require.NoError(t, err)

		u.Email = "new@b.com"
		require.NoError(t, store.Update(ctx, u))

		found, err := store.GetByEmail(ctx, "new@b.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "u1", found.ID)

		old, err := store.GetByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Nil(t, old)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		u, err := store.GetByID(ctx, "u2")
		require.NoError(t, err)

		u.Email = "new@b.com"
		assert.ErrorIs(t, store.Update(ctx, u), apperrors.ErrEmailAlreadyInUse)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := store.Update(ctx, newUser("ghost", "g@b.com"))
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

// TestUserStore_ConcurrentCreate exercises the race the store is required to
// close: many goroutines registering the same email, exactly one may win.
func TestUserStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- store.Create(ctx, newUser(string(rune('a'+n)), "same@b.com"))
		}(i)
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyInUse)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, goroutines-1, lost)
}
