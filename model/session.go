package model

import (
	"time"
)

// Message 聊天记录，追加写入，建立联合索引 (session_id, created_at)
type Message struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time `gorm:"index:idx_session_created" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	UserEmail        string    `gorm:"not null;index" json:"user_id"`
	SessionID        string    `gorm:"not null;index:idx_session_created" json:"session_id"`
	UserMessage      string    `gorm:"type:text" json:"user_message"`
	AIResponse       string    `gorm:"type:text" json:"ai_response"`
	RiskLevel        RiskLevel `gorm:"not null" json:"risk_level"`
	CopingTipTitle   *string   `json:"coping_tip_title"`
	CopingTipContent *string   `gorm:"type:text" json:"coping_tip_content"`
}

func (Message) TableName() string {
	return "chat_message"
}

// UserSession 每个会话一条记录，每轮对话后重写
type UserSession struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	UserEmail         string    `gorm:"not null;index" json:"user_id"`
	SessionID         string    `gorm:"not null;uniqueIndex" json:"session_id"`
	LatestConcern     string    `gorm:"type:text" json:"latest_concern"`
	RecentMessages    string    `gorm:"type:text" json:"last_three_messages_summary"`
	OverallRiskLevel  RiskLevel `gorm:"not null" json:"overall_risk_level"`
	SuggestedNextStep string    `json:"suggested_next_step"`
	IsActive          bool      `json:"is_active"`
}

func (UserSession) TableName() string {
	return "user_session"
}
