package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/mock-interview/internal/config"
	"google.golang.org/genai"
)

// TextGenerator adalah kontrak minimal ke layanan LLM: satu prompt masuk,
// satu teks keluar. Tidak ada retry di layer ini; kegagalan ditangani caller.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		client: client,
		model:  geminiConfig.Model,
	}, nil
}

func (s *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(1)),
		TopP:             genai.Ptr(float32(0.95)),
		TopK:             genai.Ptr(float32(40)),
		MaxOutputTokens:  8192,
		ResponseMIMEType: "application/json",
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}
	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
