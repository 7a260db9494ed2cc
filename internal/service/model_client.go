package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"interviewd/internal/config"
)

// ModelClient is a single-shot text completion call
type ModelClient interface {
	Generate(ctx context.Context, modelName, prompt string) (string, error)
}

// GeminiClient calls Gemini through the generative-ai-go SDK
type GeminiClient struct {
	client      *genai.Client
	temperature float32
}

// NewModelClient returns a Gemini client, or a client that always fails with
// ErrModelUnavailable when no API key is configured.
func NewModelClient(ctx context.Context, cfg *config.AIConfig) (ModelClient, func() error, error) {
	if !cfg.IsEnabled() {
		return unavailableClient{}, func() error { return nil }, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	gc := &GeminiClient{client: client, temperature: cfg.Temperature}
	return gc, client.Close, nil
}

// Generate sends prompt to modelName and returns the text of the first candidate
func (c *GeminiClient) Generate(ctx context.Context, modelName, prompt string) (string, error) {
	m := c.client.GenerativeModel(modelName)
	m.SetTemperature(c.temperature)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", errEmptyResponse
	}
	return sb.String(), nil
}

type unavailableClient struct{}

func (unavailableClient) Generate(context.Context, string, string) (string, error) {
	return "", ErrModelUnavailable
}
