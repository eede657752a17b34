package conversation

import (
	"context"
	"testing"
	"time"

	"serene-backend/model"
	"serene-backend/service/responder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryWith(risk model.RiskLevel) *responder.Entry {
	title := "tip title"
	content := "tip content"
	return &responder.Entry{
		ResponseText:     "a canned response",
		CopingTipTitle:   &title,
		CopingTipContent: &content,
		RiskLevel:        risk,
	}
}

func entryWithoutTip(risk model.RiskLevel) *responder.Entry {
	return &responder.Entry{
		ResponseText: "a canned response",
		RiskLevel:    risk,
	}
}

func TestRecordTurn_CreatesSession(t *testing.T) {
	store := NewMemoryStore()
	agg := NewAggregator(store, LastWriteWins)
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	msg, session, err := agg.RecordTurn(context.Background(), "a@b.com", "s1", "I feel stressed", entryWith(model.RiskMedium), now)
	require.NoError(t, err)

	assert.NotZero(t, msg.ID)
	assert.Equal(t, "I feel stressed", msg.UserMessage)
	assert.Equal(t, "a canned response", msg.AIResponse)
	assert.Equal(t, model.RiskMedium, msg.RiskLevel)
	require.NotNil(t, msg.CopingTipTitle)
	assert.Equal(t, "tip title", *msg.CopingTipTitle)

	assert.Equal(t, "s1", session.SessionID)
	assert.Equal(t, "a@b.com", session.UserEmail)
	assert.True(t, session.IsActive)
	assert.Equal(t, now, session.CreatedAt)
	assert.Equal(t, "I feel stressed", session.LatestConcern)
	assert.Equal(t, "I feel stressed", session.RecentMessages)
	assert.Equal(t, model.RiskMedium, session.OverallRiskLevel)
}

func TestRecordTurn_DigestWindow(t *testing.T) {
	store := NewMemoryStore()
	agg := NewAggregator(store, LastWriteWins)
	ctx := context.Background()
	now := time.Now()

	texts := []string{"first", "second", "third", "fourth"}
	var session *model.UserSession
	for _, text := range texts {
		var err error
		_, session, err = agg.RecordTurn(ctx, "a@b.com", "s1", text, entryWith(model.RiskLow), now)
		require.NoError(t, err)
	}

	// 窗口只保留最近三条，从旧到新
	assert.Equal(t, "second; third; fourth", session.RecentMessages)
	assert.Equal(t, "fourth", session.LatestConcern)
	assert.Len(t, store.Messages(), 4)
}

func TestRecordTurn_RiskPolicies(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("last write wins lets risk drop", func(t *testing.T) {
		agg := NewAggregator(NewMemoryStore(), LastWriteWins)

		_, session, err := agg.RecordTurn(ctx, "a@b.com", "s1", "dark thoughts", entryWith(model.RiskHigh), now)
		require.NoError(t, err)
		assert.Equal(t, model.RiskHigh, session.OverallRiskLevel)

		_, session, err = agg.RecordTurn(ctx, "a@b.com", "s1", "feeling calmer", entryWith(model.RiskLow), now)
		require.NoError(t, err)
		assert.Equal(t, model.RiskLow, session.OverallRiskLevel)
	})

	t.Run("max seen never drops", func(t *testing.T) {
		agg := NewAggregator(NewMemoryStore(), MaxSeen)

		_, session, err := agg.RecordTurn(ctx, "a@b.com", "s1", "dark thoughts", entryWith(model.RiskHigh), now)
		require.NoError(t, err)
		assert.Equal(t, model.RiskHigh, session.OverallRiskLevel)

		_, session, err = agg.RecordTurn(ctx, "a@b.com", "s1", "feeling calmer", entryWith(model.RiskLow), now)
		require.NoError(t, err)
		assert.Equal(t, model.RiskHigh, session.OverallRiskLevel)
	})
}

func TestRecordTurn_UpdatePreservesIdentity(t *testing.T) {
	store := NewMemoryStore()
	agg := NewAggregator(store, LastWriteWins)
	ctx := context.Background()

	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	_, created, err := agg.RecordTurn(ctx, "a@b.com", "s1", "hello", entryWith(model.RiskLow), first)
	require.NoError(t, err)

	second := first.Add(time.Minute)
	_, updated, err := agg.RecordTurn(ctx, "a@b.com", "s1", "still here", entryWith(model.RiskLow), second)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, first, updated.CreatedAt)
	assert.Equal(t, second, updated.UpdatedAt)
}

func TestRecordTurn_EntryWithoutTip(t *testing.T) {
	agg := NewAggregator(NewMemoryStore(), LastWriteWins)

	msg, _, err := agg.RecordTurn(context.Background(), "a@b.com", "s1", "hi", entryWithoutTip(model.RiskLow), time.Now())
	require.NoError(t, err)

	assert.Nil(t, msg.CopingTipTitle)
	assert.Nil(t, msg.CopingTipContent)
}

func TestRecordTurn_SuggestedNextStep(t *testing.T) {
	agg := NewAggregator(NewMemoryStore(), LastWriteWins)
	ctx := context.Background()
	now := time.Now()

	_, session, err := agg.RecordTurn(ctx, "a@b.com", "s1", "worried about my Exams", entryWith(model.RiskMedium), now)
	require.NoError(t, err)
	assert.Equal(t, "Offer support session on exam anxiety", session.SuggestedNextStep)

	_, session, err = agg.RecordTurn(ctx, "a@b.com", "s1", "feeling lonely", entryWith(model.RiskHigh), now)
	require.NoError(t, err)
	assert.Equal(t, "Offer support session on emotional wellness", session.SuggestedNextStep)
}

func TestRecordTurn_SessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	agg := NewAggregator(store, LastWriteWins)
	ctx := context.Background()
	now := time.Now()

	_, s1, err := agg.RecordTurn(ctx, "a@b.com", "s1", "one", entryWith(model.RiskLow), now)
	require.NoError(t, err)
	_, s2, err := agg.RecordTurn(ctx, "a@b.com", "s2", "two", entryWith(model.RiskHigh), now)
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID, s2.ID)
	assert.Equal(t, "one", s1.RecentMessages)
	assert.Equal(t, "two", s2.RecentMessages)
	assert.Equal(t, model.RiskLow, s1.OverallRiskLevel)
	assert.Equal(t, model.RiskHigh, s2.OverallRiskLevel)
}

func TestPolicyByName(t *testing.T) {
	policy, err := PolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, model.RiskLow, policy(model.RiskHigh, true, model.RiskLow))

	policy, err = PolicyByName("max_seen")
	require.NoError(t, err)
	assert.Equal(t, model.RiskHigh, policy(model.RiskHigh, true, model.RiskLow))

	_, err = PolicyByName("bogus")
	assert.Error(t, err)
}
