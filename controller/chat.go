package controller

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"serene-backend/config"
	"serene-backend/model"
	"serene-backend/request"
	"serene-backend/response"
	"serene-backend/service/alert"
	"serene-backend/service/conversation"
	"serene-backend/service/mq"
	"serene-backend/service/responder"

	"github.com/gin-gonic/gin"
)

func Chat(c *gin.Context) {
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		slog.Info(ErrEmptyMessage.Error(), "session_id", req.SessionID)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrEmptyMessage.Error(),
		})
		return
	}

	email := c.GetString("email")
	entry := responder.Default.Classify(text)

	resp := response.ChatResponse{
		ResponseText: entry.ResponseText,
		RiskLevel:    entry.RiskLevel,
	}
	if entry.HasCopingTip() {
		resp.CopingTip = &response.CopingTip{
			Title:   *entry.CopingTipTitle,
			Content: *entry.CopingTipContent,
		}
	}

	msg, session, err := conversation.Default.RecordTurn(c.Request.Context(), email, req.SessionID, text, entry, time.Now())
	if err != nil {
		// 持久化失败不能扣留应答，降级返回未保存的分类结果
		slog.Error(ErrRecordTurn.Error(), "session_id", req.SessionID, "err", err)
		c.JSON(http.StatusOK, response.Response{
			Msg:  ErrRecordTurn.Error(),
			Data: resp,
		})
		return
	}

	resp.Saved = true
	summary := toSessionSummary(session)
	resp.Session = &summary

	if entry.RiskLevel == model.RiskHigh {
		publishRiskAlert(c, msg)
	}

	c.JSON(http.StatusOK, response.Response{
		Data: resp,
	})
}

func publishRiskAlert(c *gin.Context, msg *model.Message) {
	a := alert.RiskAlert{
		UserID:    msg.UserEmail,
		SessionID: msg.SessionID,
		Concern:   msg.UserMessage,
		RiskLevel: msg.RiskLevel,
		CreatedAt: msg.CreatedAt,
	}

	if config.Cfg.MQ.Enabled {
		if err := mq.SendMessage(c.Request.Context(), &mq.Message{
			Topic:   mq.TopicRiskAlert,
			Tag:     mq.TagHighRisk,
			Payload: a,
		}); err != nil {
			slog.Error("Failed to publish risk alert", "session_id", a.SessionID, "err", err)
		}
		return
	}

	alert.DefaultHub.Publish(a)
}

func toSessionSummary(session *model.UserSession) response.SessionSummaryResponse {
	return response.SessionSummaryResponse{
		SessionID:         session.SessionID,
		UserID:            session.UserEmail,
		LatestConcern:     session.LatestConcern,
		RecentMessages:    session.RecentMessages,
		OverallRiskLevel:  session.OverallRiskLevel,
		SuggestedNextStep: session.SuggestedNextStep,
		IsActive:          session.IsActive,
		CreatedAt:         session.CreatedAt,
		UpdatedAt:         session.UpdatedAt,
	}
}
