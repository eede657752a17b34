package dao

import (
	"errors"

	"serene-backend/model"

	"gorm.io/gorm"
)

func GetSessionsByEmail(email string) ([]model.UserSession, error) {
	var sessions []model.UserSession
	if err := DB.Where("user_email = ?", email).
		Order("updated_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSessionsByRisk risk为空时返回全部会话
func GetSessionsByRisk(risk model.RiskLevel) ([]model.UserSession, error) {
	query := DB.Order("updated_at DESC")
	if risk != "" {
		query = query.Where("overall_risk_level = ?", risk)
	}

	var sessions []model.UserSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func GetSessionBySessionID(sessionID string) (*model.UserSession, error) {
	var session model.UserSession
	if err := DB.Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func GetMessagesBySessionID(sessionID string) ([]model.Message, error) {
	var messages []model.Message
	if err := DB.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func GetUserMessagesBySessionID(email, sessionID string) ([]model.Message, error) {
	var messages []model.Message
	if err := DB.Where("user_email = ? AND session_id = ?", email, sessionID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func CountSessionsByRisk() (map[model.RiskLevel]int64, error) {
	var rows []struct {
		OverallRiskLevel model.RiskLevel
		Count            int64
	}
	if err := DB.Model(&model.UserSession{}).
		Select("overall_risk_level, count(*) as count").
		Group("overall_risk_level").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[model.RiskLevel]int64, len(rows))
	for _, row := range rows {
		counts[row.OverallRiskLevel] = row.Count
	}
	return counts, nil
}
