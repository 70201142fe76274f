package storage

import (
	"sync"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

// SessionStorage keeps the active study and explore sessions per chat.
// Sessions are ephemeral: nothing here survives a restart.
type SessionStorage struct {
	mu      sync.RWMutex
	study   map[int64]*entities.StudySession
	explore map[int64]*entities.ExploreSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		study:   make(map[int64]*entities.StudySession),
		explore: make(map[int64]*entities.ExploreSession),
	}
}

// StoreStudy replaces the study session of a chat.
func (s *SessionStorage) StoreStudy(chatID int64, session *entities.StudySession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.study[chatID] = session
}

// Study returns the study session of a chat if its id matches.
func (s *SessionStorage) Study(chatID int64, id string) (*entities.StudySession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.study[chatID]
	if !ok || session.ID != id {
		return nil, false
	}
	return session, true
}

// DeleteStudy discards the study session of a chat.
func (s *SessionStorage) DeleteStudy(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.study, chatID)
}

// StoreExplore replaces the explore session of a chat.
func (s *SessionStorage) StoreExplore(chatID int64, session *entities.ExploreSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explore[chatID] = session
}

// Explore returns the explore session of a chat if its id matches.
func (s *SessionStorage) Explore(chatID int64, id string) (*entities.ExploreSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.explore[chatID]
	if !ok || session.ID != id {
		return nil, false
	}
	return session, true
}

// DeleteExplore discards the explore session of a chat.
func (s *SessionStorage) DeleteExplore(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.explore, chatID)
}
