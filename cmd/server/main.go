package main

import (
	"log/slog"
	"os"

	"serene-backend/config"
	"serene-backend/dao"
	"serene-backend/router"
	"serene-backend/service/conversation"
	"serene-backend/service/mq"
)

func main() {
	path := os.Getenv("SERENE_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	if err := config.Load(path); err != nil {
		slog.Error("Failed to load config", "path", path, "err", err)
		os.Exit(1)
	}

	if err := dao.Init(); err != nil {
		slog.Error("Failed to init database", "err", err)
		os.Exit(1)
	}

	policy, err := conversation.PolicyByName(config.Cfg.Responder.RiskPolicy)
	if err != nil {
		slog.Error("Failed to resolve risk policy", "err", err)
		os.Exit(1)
	}
	conversation.Init(dao.NewConversationStore(dao.DB), policy)

	if config.Cfg.MQ.Enabled {
		if err := mq.Run(); err != nil {
			slog.Error("Failed to start mq", "err", err)
			os.Exit(1)
		}
		defer mq.Shutdown()
	}

	r := router.Register()
	if err := r.Run(":" + config.Cfg.Server.Port); err != nil {
		slog.Error("Failed to start server", "err", err)
		os.Exit(1)
	}
}
