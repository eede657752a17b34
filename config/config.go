package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Counselor CounselorConfig `yaml:"counselor"`
	Responder ResponderConfig `yaml:"responder"`
	MQ        MQConfig        `yaml:"mq"`
}

type ServerConfig struct {
	Port         string   `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
}

type CounselorConfig struct {
	AccessCode string `yaml:"access_code"`
}

type ResponderConfig struct {
	// RiskPolicy 会话风险聚合策略：last_write_wins（默认）或 max_seen
	RiskPolicy string `yaml:"risk_policy"`
}

type MQConfig struct {
	Enabled    bool     `yaml:"enabled"`
	NameServer []string `yaml:"name_server"`
}

var Cfg *Config

func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Database.DSN == "" {
		return errors.New("database dsn must be configured")
	}
	if cfg.JWT.SecretKey == "" {
		return errors.New("jwt secret_key must be configured")
	}
	if cfg.Counselor.AccessCode == "" {
		return errors.New("counselor access_code must be configured")
	}
	if cfg.MQ.Enabled && len(cfg.MQ.NameServer) == 0 {
		return errors.New("mq name_server must be configured when mq is enabled")
	}

	Cfg = &cfg
	return nil
}
