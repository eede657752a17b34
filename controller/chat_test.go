package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serene-backend/config"
	"serene-backend/middleware"
	"serene-backend/model"
	"serene-backend/response"
	"serene-backend/service/conversation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChatRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Cfg = &config.Config{
		JWT:       config.JWTConfig{SecretKey: "test-secret"},
		Counselor: config.CounselorConfig{AccessCode: "test-code"},
	}
	conversation.Init(conversation.NewMemoryStore(), conversation.LastWriteWins)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/counselor/login", CounselorLogin)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/chat", Chat)
	protected.POST("/session", CreateSession)

	counselor := protected.Group("/counselor")
	counselor.Use(middleware.CounselorMiddleware())
	counselor.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	return r
}

func userToken(t *testing.T, email, role string) string {
	t.Helper()
	token, err := middleware.GenerateToken(email, role)
	require.NoError(t, err)
	return token
}

func postJSON(r *gin.Engine, path, token string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeChat(t *testing.T, w *httptest.ResponseRecorder) response.ChatResponse {
	t.Helper()
	var envelope struct {
		Msg  string                `json:"msg"`
		Data response.ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestChat(t *testing.T) {
	r := setupChatRouter(t)
	token := userToken(t, "a@b.com", model.RoleUser)

	t.Run("high risk message", func(t *testing.T) {
		w := postJSON(r, "/api/chat", token, gin.H{
			"session_id": "s1",
			"message":    "I feel suicidal",
		})
		require.Equal(t, http.StatusOK, w.Code)

		chat := decodeChat(t, w)
		assert.Equal(t, model.RiskHigh, chat.RiskLevel)
		assert.True(t, chat.Saved)
		require.NotNil(t, chat.CopingTip)
		assert.Equal(t, "Emergency Self-Care Kit", chat.CopingTip.Title)
		assert.Contains(t, chat.CopingTip.Content, "988 (Suicide & Crisis Lifeline)")

		require.NotNil(t, chat.Session)
		assert.Equal(t, "s1", chat.Session.SessionID)
		assert.Equal(t, "a@b.com", chat.Session.UserID)
		assert.Equal(t, model.RiskHigh, chat.Session.OverallRiskLevel)
		assert.True(t, chat.Session.IsActive)
	})

	t.Run("low risk follow-up overwrites overall risk", func(t *testing.T) {
		w := postJSON(r, "/api/chat", token, gin.H{
			"session_id": "s1",
			"message":    "thanks, that helped",
		})
		require.Equal(t, http.StatusOK, w.Code)

		chat := decodeChat(t, w)
		assert.Equal(t, model.RiskLow, chat.RiskLevel)
		require.NotNil(t, chat.Session)
		assert.Equal(t, model.RiskLow, chat.Session.OverallRiskLevel)
		assert.Equal(t, "I feel suicidal; thanks, that helped", chat.Session.RecentMessages)
	})

	t.Run("whitespace-only message rejected", func(t *testing.T) {
		w := postJSON(r, "/api/chat", token, gin.H{
			"session_id": "s1",
			"message":    "   ",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		w := postJSON(r, "/api/chat", token, gin.H{"message": "hello"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := postJSON(r, "/api/chat", "", gin.H{
			"session_id": "s1",
			"message":    "hello",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateSession(t *testing.T) {
	r := setupChatRouter(t)
	token := userToken(t, "a@b.com", model.RoleUser)

	w := postJSON(r, "/api/session", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data response.NewSessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.SessionID)

	w2 := postJSON(r, "/api/session", token, nil)
	var envelope2 struct {
		Data response.NewSessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &envelope2))
	assert.NotEqual(t, envelope.Data.SessionID, envelope2.Data.SessionID)
}

func TestCounselorLogin(t *testing.T) {
	r := setupChatRouter(t)

	t.Run("valid access code", func(t *testing.T) {
		w := postJSON(r, "/api/counselor/login", "", gin.H{
			"email":       "c@b.com",
			"access_code": "test-code",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data response.CounselorAuthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "c@b.com", envelope.Data.Email)
		assert.NotEmpty(t, envelope.Data.Token)
	})

	t.Run("wrong access code", func(t *testing.T) {
		w := postJSON(r, "/api/counselor/login", "", gin.H{
			"email":       "c@b.com",
			"access_code": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCounselorMiddleware(t *testing.T) {
	r := setupChatRouter(t)

	t.Run("user role forbidden", func(t *testing.T) {
		token := userToken(t, "a@b.com", model.RoleUser)
		req := httptest.NewRequest(http.MethodGet, "/api/counselor/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("counselor role allowed", func(t *testing.T) {
		token := userToken(t, "c@b.com", model.RoleCounselor)
		req := httptest.NewRequest(http.MethodGet, "/api/counselor/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
