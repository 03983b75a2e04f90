package config

import (
	"os"
	"sync"
)

type AuthConfig struct {
	JWTSecret string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		authConfig = &AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		}
	})
	return authConfig
}
