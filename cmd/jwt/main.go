package main

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
)

// 生成配置里需要的两个机密：JWT签名密钥和咨询师访问码
func generateSecret(bytes int) (string, error) {
	key := make([]byte, bytes)
	_, err := rand.Read(key)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(key), nil
}

func main() {
	secret, err := generateSecret(32)
	if err != nil {
		slog.Error("Error generating JWT secret", "err", err)
		return
	}

	accessCode, err := generateSecret(12)
	if err != nil {
		slog.Error("Error generating access code", "err", err)
		return
	}

	slog.Info("Generated secrets",
		"jwt_secret", secret,
		"counselor_access_code", accessCode)
}
