package quiz

import "sync"

// Session is the ephemeral per-user conversation position plus the
// accumulated ordered answers. Sessions are never persisted; a process
// restart drops any quiz in progress.
type Session struct {
	State   State
	Answers []Label
}

// sessionStore keeps sessions in memory keyed by Telegram user ID and
// serialises all mutations for a given user behind a per-user lock, so
// that two in-flight updates for the same user cannot interleave.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	locks    map[int64]*sync.Mutex
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// userLock returns the mutex guarding a single user's session,
// creating it on first contact. Locks are never removed: their count is
// bounded by the number of users ever seen, one small struct each.
func (s *sessionStore) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// get returns the session for a user, or an idle placeholder.
func (s *sessionStore) get(userID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return *sess
	}
	return Session{State: StateIdle}
}

// put stores a full session snapshot for a user.
func (s *sessionStore) put(userID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := sess
	copied.Answers = append([]Label(nil), sess.Answers...)
	s.sessions[userID] = &copied
}

// clear removes the session so the user folds back to idle.
func (s *sessionStore) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// active reports whether the user has a non-idle session.
func (s *sessionStore) active(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return ok && sess.State != StateIdle
}
