package conversation

import (
	"context"

	"serene-backend/model"
)

// Store 持久化消息日志和会话摘要。生产环境由数据库实现，测试用内存实现。
type Store interface {
	// AppendMessage 追加一条消息日志并回填其序号
	AppendMessage(ctx context.Context, msg *model.Message) error

	// RecentUserMessages 返回该用户该会话最近的limit条用户消息，从旧到新
	RecentUserMessages(ctx context.Context, userEmail, sessionID string, limit int) ([]string, error)

	// GetSession 会话摘要不存在时返回 (nil, nil)
	GetSession(ctx context.Context, userEmail, sessionID string) (*model.UserSession, error)

	UpsertSession(ctx context.Context, session *model.UserSession) error
}
