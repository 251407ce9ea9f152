package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/client/session"
)

func newCache(t *testing.T) *session.Cache {
	t.Helper()
	return session.NewCache(filepath.Join(t.TempDir(), "session.json"))
}

func fullData() session.Data {
	return session.Data{
		Token: "token-1",
		User:  &session.User{ID: "u1", FirstName: "A", LastName: "B", Email: "a@b.com"},
	}
}

func TestCache_PersistAndRestore(t *testing.T) {
	cache := newCache(t)

	require.NoError(t, cache.Persist(fullData()))

	restored := cache.Restore()
	require.True(t, restored.Complete())
	assert.Equal(t, "token-1", restored.Token)
	assert.Equal(t, "a@b.com", restored.User.Email)
}

func TestCache_PersistRefusesIncomplete(t *testing.T) {
	cache := newCache(t)

	assert.Error(t, cache.Persist(session.Data{Token: "token-only"}))
	assert.Error(t, cache.Persist(session.Data{User: &session.User{ID: "u1"}}))
	assert.False(t, cache.Restore().Complete())
}

func TestCache_RestoreEdgeCases(t *testing.T) {
	t.Run("missing file restores empty", func(t *testing.T) {
		cache := newCache(t)
		assert.Equal(t, session.Data{}, cache.Restore())
	})

	t.Run("corrupt file restores empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		assert.Equal(t, session.Data{}, session.NewCache(path).Restore())
	})

	t.Run("partial file restores empty, never half a session", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"token":"t"}`), 0o600))

		restored := session.NewCache(path).Restore()
		assert.Empty(t, restored.Token)
		assert.Nil(t, restored.User)
	})
}

func TestCache_ClearIsIdempotent(t *testing.T) {
	cache := newCache(t)
	require.NoError(t, cache.Persist(fullData()))

	require.NoError(t, cache.Clear())
	require.NoError(t, cache.Clear()) // second clear finds nothing to remove
	assert.False(t, cache.Restore().Complete())
}

func TestSession_Lifecycle(t *testing.T) {
	cache := newCache(t)

	s := session.Restore(cache)
	assert.Equal(t, session.StateUnauthenticated, s.State())

	require.NoError(t, s.Login(fullData()))
	assert.Equal(t, session.StateAuthenticated, s.State())
	assert.Equal(t, "token-1", s.Token())

	// A fresh process restores the same session from disk.
	restored := session.Restore(cache)
	assert.Equal(t, session.StateAuthenticated, restored.State())
	assert.Equal(t, "u1", restored.User().ID)

	require.NoError(t, s.Logout())
	assert.Equal(t, session.StateUnauthenticated, s.State())
	assert.Empty(t, s.Token())

	// After logout nothing survives a restart.
	assert.Equal(t, session.StateUnauthenticated, session.Restore(cache).State())
}

func TestSession_OnAuthError(t *testing.T) {
	cache := newCache(t)

	s := session.Restore(cache)
	require.NoError(t, s.Login(fullData()))

	require.NoError(t, s.OnAuthError())
	assert.Equal(t, session.StateExpiredPendingReauth, s.State())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())

	// The rejected token is gone from disk as well.
	assert.False(t, cache.Restore().Complete())

	// Logging back in recovers.
	require.NoError(t, s.Login(fullData()))
	assert.Equal(t, session.StateAuthenticated, s.State())
}
