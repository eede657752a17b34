// Package alert 将高风险轮次实时推送给已连接的复核面板。
package alert

import (
	"log/slog"
	"sync"
	"time"

	"serene-backend/model"

	"github.com/gorilla/websocket"
)

const alertChanSize = 100

type RiskAlert struct {
	UserID    string          `json:"user_id"`
	SessionID string          `json:"session_id"`
	Concern   string          `json:"latest_concern"`
	RiskLevel model.RiskLevel `json:"risk_level"`
	CreatedAt time.Time       `json:"created_at"`
}

type Hub struct {
	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	alerts chan RiskAlert
}

// DefaultHub Hub单例实例
var DefaultHub = NewHub()

func NewHub() *Hub {
	h := &Hub{
		conns:  make(map[*websocket.Conn]struct{}),
		alerts: make(chan RiskAlert, alertChanSize),
	}
	go h.dispatch()
	return h
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
	}
}

// Publish 非阻塞入队，队列满时丢弃告警而不是阻塞聊天请求
func (h *Hub) Publish(a RiskAlert) {
	select {
	case h.alerts <- a:
	default:
		slog.Warn("Alert queue full, dropping alert", "session_id", a.SessionID)
	}
}

func (h *Hub) dispatch() {
	for a := range h.alerts {
		h.broadcast(a)
	}
}

func (h *Hub) broadcast(a RiskAlert) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(a); err != nil {
			slog.Info("Dropping dashboard connection", "err", err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
