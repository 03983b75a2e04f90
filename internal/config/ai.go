package config

import (
	"os"
	"sync"
)

type AIConfig struct {
	Provider string // "gemini" (default) atau "openrouter"
}

var (
	aiConfig *AIConfig
	aiOnce   sync.Once
)

func LoadAIConfig() *AIConfig {
	aiOnce.Do(func() {
		provider := os.Getenv("AI_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		aiConfig = &AIConfig{Provider: provider}
	})
	return aiConfig
}
