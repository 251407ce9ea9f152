package session

// State describes where the client session stands.
type State string

const (
	// StateUnauthenticated means no session exists.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticated means a token and user snapshot are loaded.
	StateAuthenticated State = "authenticated"
	// StateExpiredPendingReauth means the server rejected the token; the
	// cache has been cleared and the user must log in again.
	StateExpiredPendingReauth State = "expired"
)

// Session is the in-memory view over the cache. All transitions keep the
// cache in sync: an authenticated session is always fully persisted, any
// other state leaves no file behind.
type Session struct {
	cache *Cache
	state State
	data  Data
}

// Restore builds a session from whatever the cache holds. A complete cached
// session starts authenticated; anything else starts unauthenticated.
func Restore(cache *Cache) *Session {
	s := &Session{cache: cache, state: StateUnauthenticated}
	if data := cache.Restore(); data.Complete() {
		s.data = data
		s.state = StateAuthenticated
	}
	return s
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Token() string {
	return s.data.Token
}

func (s *Session) User() *User {
	return s.data.User
}

// Login stores a fresh session and moves to authenticated. The persist
// happens first; on failure the in-memory state is untouched.
func (s *Session) Login(data Data) error {
	if err := s.cache.Persist(data); err != nil {
		return err
	}
	s.data = data
	s.state = StateAuthenticated
	return nil
}

// Logout clears the cache and returns to unauthenticated.
func (s *Session) Logout() error {
	if err := s.cache.Clear(); err != nil {
		return err
	}
	s.data = Data{}
	s.state = StateUnauthenticated
	return nil
}

// OnAuthError reacts to a server-side token rejection: the cached session is
// dropped and the state records that a re-login is needed.
func (s *Session) OnAuthError() error {
	if err := s.cache.Clear(); err != nil {
		return err
	}
	s.data = Data{}
	s.state = StateExpiredPendingReauth
	return nil
}
