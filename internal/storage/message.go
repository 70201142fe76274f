package storage

import (
	"sync"
	"time"
)

// WidgetMessage identifies the last widget message posted to a chat.
type WidgetMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// MessageStorage remembers the last widget message per chat so that the next
// refresh can replace it instead of piling up new messages.
type MessageStorage struct {
	mu       sync.Mutex
	messages map[int64]WidgetMessage
}

// NewMessageStorage creates a new MessageStorage.
func NewMessageStorage() *MessageStorage {
	return &MessageStorage{
		messages: make(map[int64]WidgetMessage),
	}
}

// UpsertAndGetPrev stores a new widget message and returns the one it replaced.
func (s *MessageStorage) UpsertAndGetPrev(chatID int64, messageID int) (prev WidgetMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = WidgetMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	}

	return prev, hadPrev
}
