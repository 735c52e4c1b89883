package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider talks to the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini client for model.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return &GeminiProvider{model: model}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

// Complete generates content for the user prompt under the system instruction.
func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if p.client == nil {
		return "", ErrProviderNotConfigured
	}

	temp := req.Temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		},
		Temperature: &temp,
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{genai.NewContentFromText(req.UserPrompt, "user")},
		config,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	if result == nil {
		return "", ErrEmptyResponse
	}
	return result.Text(), nil
}
