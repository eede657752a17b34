package alert

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"serene-backend/model"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Add(conn)
		defer hub.Remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	sent := RiskAlert{
		UserID:    "a@b.com",
		SessionID: "s1",
		Concern:   "I feel suicidal",
		RiskLevel: model.RiskHigh,
		CreatedAt: time.Now().UTC(),
	}
	hub.Publish(sent)

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got RiskAlert
	require.NoError(t, client.ReadJSON(&got))

	assert.Equal(t, sent.UserID, got.UserID)
	assert.Equal(t, sent.SessionID, got.SessionID)
	assert.Equal(t, sent.Concern, got.Concern)
	assert.Equal(t, model.RiskHigh, got.RiskLevel)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < alertChanSize*3; i++ {
			hub.Publish(RiskAlert{SessionID: "s1", RiskLevel: model.RiskHigh})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked with no consumers keeping up")
	}
}
