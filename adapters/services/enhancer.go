package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SeaCloudHub/captioner/domain/caption"
	"github.com/SeaCloudHub/captioner/pkg/config"
	"github.com/SeaCloudHub/captioner/pkg/groq"
)

// EnhancerService rewrites captions into product descriptions through the Groq API.
type EnhancerService struct {
	client      *groq.Client
	model       string
	maxTokens   int
	temperature float64
	topP        float64
}

func NewEnhancerService(cfg *config.Config) (*EnhancerService, error) {
	client, err := groq.NewClient(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Timeout: cfg.Groq.Timeout,
		Debug:   cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("new groq client: %w", err)
	}

	return &EnhancerService{
		client:      client,
		model:       cfg.Groq.Model,
		maxTokens:   cfg.Groq.MaxTokens,
		temperature: cfg.Groq.Temperature,
		topP:        cfg.Groq.TopP,
	}, nil
}

func (s *EnhancerService) Enhance(ctx context.Context, text string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, &groq.ChatCompletionRequest{
		Model: s.model,
		Messages: []groq.Message{
			{Role: groq.RoleUser, Content: caption.BuildPrompt(text)},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		TopP:        s.topP,
	})
	if err != nil {
		return "", err
	}

	content, err := resp.Content()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(content), nil
}
