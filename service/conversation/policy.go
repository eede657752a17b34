package conversation

import (
	"fmt"

	"serene-backend/model"
)

// RiskPolicy 决定一轮对话之后会话的整体风险级别
type RiskPolicy func(prev model.RiskLevel, hasPrev bool, turn model.RiskLevel) model.RiskLevel

// LastWriteWins 始终取最近一轮的风险级别
func LastWriteWins(_ model.RiskLevel, _ bool, turn model.RiskLevel) model.RiskLevel {
	return turn
}

// MaxSeen 会话风险只升不降，避免早期高风险轮次被后续闲聊掩盖
func MaxSeen(prev model.RiskLevel, hasPrev bool, turn model.RiskLevel) model.RiskLevel {
	if !hasPrev {
		return turn
	}
	return model.MaxRisk(prev, turn)
}

func PolicyByName(name string) (RiskPolicy, error) {
	switch name {
	case "", "last_write_wins":
		return LastWriteWins, nil
	case "max_seen":
		return MaxSeen, nil
	default:
		return nil, fmt.Errorf("unknown risk policy %q", name)
	}
}
