package conversation

import (
	"context"
	"sync"

	"serene-backend/model"
)

// MemoryStore 进程内存储，与持久化存储保持相同的存储形态
type MemoryStore struct {
	mu         sync.Mutex
	messages   []model.Message
	sessions   map[string]model.UserSession
	messageSeq uint
	sessionSeq uint
}

var _ Store = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]model.UserSession),
	}
}

func (s *MemoryStore) AppendMessage(_ context.Context, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messageSeq++
	msg.ID = s.messageSeq
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *MemoryStore) RecentUserMessages(_ context.Context, userEmail, sessionID string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var texts []string
	for _, msg := range s.messages {
		if msg.UserEmail == userEmail && msg.SessionID == sessionID {
			texts = append(texts, msg.UserMessage)
		}
	}
	if len(texts) > limit {
		texts = texts[len(texts)-limit:]
	}
	return texts, nil
}

func (s *MemoryStore) GetSession(_ context.Context, userEmail, sessionID string) (*model.UserSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.UserEmail != userEmail {
		return nil, nil
	}
	return &session, nil
}

func (s *MemoryStore) UpsertSession(_ context.Context, session *model.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.ID == 0 {
		s.sessionSeq++
		session.ID = s.sessionSeq
	}
	s.sessions[session.SessionID] = *session
	return nil
}

// Messages 返回日志快照，便于测试断言
func (s *MemoryStore) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Message(nil), s.messages...)
}
