package telegram

import (
	"sync"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

// sessionStore tracks one in-progress dialogue per user, in memory only.
// There is no expiry: an abandoned session lives until the user issues a
// new entry-point command or the process restarts.
type sessionStore struct {
	mu     sync.Mutex
	byUser map[int64]*entity.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{byUser: make(map[int64]*entity.Session)}
}

func (s *sessionStore) get(userID int64) *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byUser[userID]
}

// begin discards any prior partial state and starts a fresh session.
func (s *sessionStore) begin(userID int64) *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &entity.Session{UserID: userID}
	s.byUser[userID] = session
	return session
}

func (s *sessionStore) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
