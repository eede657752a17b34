package controller

import (
	"log/slog"
	"net/http"

	"serene-backend/dao"
	"serene-backend/model"
	"serene-backend/response"
	"serene-backend/service/alert"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CounselorSessions 按风险级别筛选全部会话摘要，附带用户档案
func CounselorSessions(c *gin.Context) {
	filter := c.DefaultQuery("risk", "All")

	var risk model.RiskLevel
	if filter != "All" {
		risk = model.RiskLevel(filter)
		if !risk.Valid() {
			slog.Info(ErrInvalidRiskFilter.Error(), "risk", filter)
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
				Msg: ErrInvalidRiskFilter.Error(),
			})
			return
		}
	}

	sessions, err := dao.GetSessionsByRisk(risk)
	if err != nil {
		slog.Error(ErrGetSessions.Error(), "risk", filter, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessions.Error(),
		})
		return
	}

	emails := make([]string, 0, len(sessions))
	for _, s := range sessions {
		emails = append(emails, s.UserEmail)
	}
	profiles, err := dao.GetUsersByEmails(emails)
	if err != nil {
		slog.Error(ErrGetSessions.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessions.Error(),
		})
		return
	}

	var resp response.GetCounselorSessionsResponse
	for i := range sessions {
		profile := profiles[sessions[i].UserEmail]
		resp.Sessions = append(resp.Sessions, response.CounselorSessionResponse{
			SessionSummaryResponse: toSessionSummary(&sessions[i]),
			UserName:               profile.Name,
			UserAvatar:             profile.Avatar,
		})
	}

	c.JSON(http.StatusOK, response.Response{
		Data: resp,
	})
}

// CounselorSessionMessages 消息日志存在但会话摘要缺失属于数据完整性错误，
// 直接暴露而不是静默修复
func CounselorSessionMessages(c *gin.Context) {
	sessionID := c.Param("id")
	messages, err := dao.GetMessagesBySessionID(sessionID)
	if err != nil {
		slog.Error(ErrGetSessionMessages.Error(), "session_id", sessionID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessionMessages.Error(),
		})
		return
	}

	if len(messages) > 0 {
		session, err := dao.GetSessionBySessionID(sessionID)
		if err != nil {
			slog.Error(ErrGetSessionMessages.Error(), "session_id", sessionID, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Msg: ErrGetSessionMessages.Error(),
			})
			return
		}
		if session == nil {
			slog.Error(ErrSessionIntegrity.Error(), "session_id", sessionID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Msg: ErrSessionIntegrity.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, response.Response{
		Data: toMessagesResponse(messages),
	})
}

func CounselorStats(c *gin.Context) {
	counts, err := dao.CountSessionsByRisk()
	if err != nil {
		slog.Error(ErrGetDashboardStats.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetDashboardStats.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.DashboardStatsResponse{
			TotalSessions: counts[model.RiskLow] + counts[model.RiskMedium] + counts[model.RiskHigh],
			HighRisk:      counts[model.RiskHigh],
			MediumRisk:    counts[model.RiskMedium],
			LowRisk:       counts[model.RiskLow],
		},
	})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// CounselorAlerts 升级为websocket连接并推送高风险告警，直到客户端断开
func CounselorAlerts(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error(ErrUpgradeConnection.Error(), "err", err)
		return
	}

	alert.DefaultHub.Add(conn)
	defer alert.DefaultHub.Remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
