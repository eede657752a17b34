package response

import (
	"time"

	"serene-backend/model"
)

type NewSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SessionSummaryResponse struct {
	SessionID         string          `json:"session_id"`
	UserID            string          `json:"user_id"`
	LatestConcern     string          `json:"latest_concern"`
	RecentMessages    string          `json:"last_three_messages_summary"`
	OverallRiskLevel  model.RiskLevel `json:"overall_risk_level"`
	SuggestedNextStep string          `json:"suggested_next_step"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type GetSessionsResponse struct {
	Sessions []SessionSummaryResponse `json:"sessions"`
}

type MessageResponse struct {
	ID          uint            `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UserMessage string          `json:"user_message"`
	AIResponse  string          `json:"ai_response"`
	RiskLevel   model.RiskLevel `json:"risk_level"`
	CopingTip   *CopingTip      `json:"coping_tip,omitempty"`
}

type GetSessionMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// CounselorSessionResponse 会话摘要附带用户档案，供复核面板展示
type CounselorSessionResponse struct {
	SessionSummaryResponse
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
}

type GetCounselorSessionsResponse struct {
	Sessions []CounselorSessionResponse `json:"sessions"`
}

type DashboardStatsResponse struct {
	TotalSessions int64 `json:"total_sessions"`
	HighRisk      int64 `json:"high_risk"`
	MediumRisk    int64 `json:"medium_risk"`
	LowRisk       int64 `json:"low_risk"`
}
