package dao

import (
	"context"
	"errors"

	"serene-backend/model"
	"serene-backend/service/conversation"

	"gorm.io/gorm"
)

// ConversationStore 会话聚合器的数据库存储实现
type ConversationStore struct {
	db *gorm.DB
}

var _ conversation.Store = &ConversationStore{}

func NewConversationStore(db *gorm.DB) *ConversationStore {
	return &ConversationStore{db: db}
}

func (s *ConversationStore) AppendMessage(ctx context.Context, msg *model.Message) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

func (s *ConversationStore) RecentUserMessages(ctx context.Context, userEmail, sessionID string, limit int) ([]string, error) {
	var texts []string
	if err := s.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("user_email = ? AND session_id = ?", userEmail, sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Pluck("user_message", &texts).Error; err != nil {
		return nil, err
	}

	// 倒序查出最近limit条，翻转为从旧到新
	for i, j := 0, len(texts)-1; i < j; i, j = i+1, j-1 {
		texts[i], texts[j] = texts[j], texts[i]
	}
	return texts, nil
}

func (s *ConversationStore) GetSession(ctx context.Context, userEmail, sessionID string) (*model.UserSession, error) {
	var session model.UserSession
	if err := s.db.WithContext(ctx).
		Where("user_email = ? AND session_id = ?", userEmail, sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *ConversationStore) UpsertSession(ctx context.Context, session *model.UserSession) error {
	if session.ID == 0 {
		return s.db.WithContext(ctx).Create(session).Error
	}
	return s.db.WithContext(ctx).Save(session).Error
}
