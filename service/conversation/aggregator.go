// Package conversation 将每轮已分类的消息折叠进会话摘要，供复核端查看。
package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"serene-backend/model"
	"serene-backend/service/responder"
)

const (
	digestWindow    = 3
	digestSeparator = "; "
)

type Aggregator struct {
	store  Store
	policy RiskPolicy

	// 会话级互斥，避免摘要读改写丢失更新
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Default Aggregator单例实例，由main装配
var Default *Aggregator

func Init(store Store, policy RiskPolicy) {
	Default = NewAggregator(store, policy)
}

func NewAggregator(store Store, policy RiskPolicy) *Aggregator {
	return &Aggregator{
		store:  store,
		policy: policy,
		locks:  make(map[string]*sync.Mutex),
	}
}

// RecordTurn 追加消息日志并重写会话摘要。
// 前置条件：userMessage非空，空输入应在调用方边界拒绝。
func (a *Aggregator) RecordTurn(ctx context.Context, userEmail, sessionID, userMessage string, entry *responder.Entry, now time.Time) (*model.Message, *model.UserSession, error) {
	unlock := a.lockSession(sessionID)
	defer unlock()

	msg := &model.Message{
		CreatedAt:        now,
		UpdatedAt:        now,
		UserEmail:        userEmail,
		SessionID:        sessionID,
		UserMessage:      userMessage,
		AIResponse:       entry.ResponseText,
		RiskLevel:        entry.RiskLevel,
		CopingTipTitle:   entry.CopingTipTitle,
		CopingTipContent: entry.CopingTipContent,
	}
	if err := a.store.AppendMessage(ctx, msg); err != nil {
		return nil, nil, fmt.Errorf("failed to append message: %w", err)
	}

	recent, err := a.store.RecentUserMessages(ctx, userEmail, sessionID, digestWindow)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load recent messages: %w", err)
	}

	session, err := a.store.GetSession(ctx, userEmail, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session == nil {
		session = &model.UserSession{
			CreatedAt:        now,
			UserEmail:        userEmail,
			SessionID:        sessionID,
			IsActive:         true,
			OverallRiskLevel: a.policy("", false, entry.RiskLevel),
		}
	} else {
		session.OverallRiskLevel = a.policy(session.OverallRiskLevel, true, entry.RiskLevel)
	}
	session.UpdatedAt = now
	session.LatestConcern = userMessage
	session.RecentMessages = strings.Join(recent, digestSeparator)
	session.SuggestedNextStep = suggestNextStep(userMessage)

	if err := a.store.UpsertSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to upsert session: %w", err)
	}

	return msg, session, nil
}

// suggestNextStep 目前只有一条启发式规则：提到考试则建议考试焦虑支持
func suggestNextStep(userMessage string) string {
	topic := "emotional wellness"
	if strings.Contains(strings.ToLower(userMessage), "exam") {
		topic = "exam anxiety"
	}
	return "Offer support session on " + topic
}

func (a *Aggregator) lockSession(sessionID string) func() {
	a.mu.Lock()
	lock, ok := a.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[sessionID] = lock
	}
	a.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
