package response

import (
	"serene-backend/model"
)

type CopingTip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ChatResponse struct {
	ResponseText string          `json:"response_text"`
	CopingTip    *CopingTip      `json:"coping_tip,omitempty"`
	RiskLevel    model.RiskLevel `json:"risk_level"`

	// Saved 持久化失败时为false，应答仍然返回
	Saved   bool                    `json:"saved"`
	Session *SessionSummaryResponse `json:"session,omitempty"`
}
