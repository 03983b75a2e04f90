package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/mock-interview/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService adalah TextGenerator alternatif lewat OpenRouter
// chat completions, dipilih dengan AI_PROVIDER=openrouter.
type OpenRouterService struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewOpenRouterService() *OpenRouterService {
	openRouterConfig := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		client: resty.New(),
		apiKey: openRouterConfig.APIKey,
		model:  openRouterConfig.Model,
	}
}

func (s *OpenRouterService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an AI interviewer evaluating mock interview sessions."},
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned %s: %s", resp.Status(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
