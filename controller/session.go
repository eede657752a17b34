package controller

import (
	"log/slog"
	"net/http"

	"serene-backend/dao"
	"serene-backend/model"
	"serene-backend/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSession 生成新的会话标识。会话摘要在第一轮对话时才落库。
func CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, response.Response{
		Data: response.NewSessionResponse{
			SessionID: uuid.New().String(),
		},
	})
}

func GetSessions(c *gin.Context) {
	email := c.GetString("email")
	sessions, err := dao.GetSessionsByEmail(email)
	if err != nil {
		slog.Error(ErrGetSessions.Error(), "email", email, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessions.Error(),
		})
		return
	}

	var resp response.GetSessionsResponse
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionSummary(&sessions[i]))
	}

	c.JSON(http.StatusOK, response.Response{
		Data: resp,
	})
}

func GetSessionMessages(c *gin.Context) {
	email := c.GetString("email")
	sessionID := c.Param("id")
	messages, err := dao.GetUserMessagesBySessionID(email, sessionID)
	if err != nil {
		slog.Error(ErrGetSessionMessages.Error(), "session_id", sessionID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessionMessages.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: toMessagesResponse(messages),
	})
}

func toMessagesResponse(messages []model.Message) response.GetSessionMessagesResponse {
	var resp response.GetSessionMessagesResponse
	for _, m := range messages {
		mr := response.MessageResponse{
			ID:          m.ID,
			CreatedAt:   m.CreatedAt,
			UserMessage: m.UserMessage,
			AIResponse:  m.AIResponse,
			RiskLevel:   m.RiskLevel,
		}
		if m.CopingTipTitle != nil && m.CopingTipContent != nil {
			mr.CopingTip = &response.CopingTip{
				Title:   *m.CopingTipTitle,
				Content: *m.CopingTipContent,
			}
		}
		resp.Messages = append(resp.Messages, mr)
	}
	return resp
}
