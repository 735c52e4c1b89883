package ai

import (
	"context"
	"fmt"
	"strings"

	"whalestreet_ai_server/internal/ai/prompts"
)

// EnhancePrompt rewrites a rough game idea into a more detailed one.
func (g *Generator) EnhancePrompt(ctx context.Context, originalPrompt string) (string, error) {
	if strings.TrimSpace(originalPrompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	fullPrompt, systemPrompt := prompts.GetEnhancePromptPrompt(originalPrompt)

	output, err := g.complete(ctx, "enhance_prompt", systemPrompt, fullPrompt)
	if err != nil {
		return "", err
	}

	var resp struct {
		EnhancedPrompt string `json:"enhancedPrompt"`
	}
	if err := decodeJSON(output, &resp); err != nil {
		return "", fmt.Errorf("failed to parse enhanced prompt: %w", err)
	}
	if resp.EnhancedPrompt == "" {
		return "", fmt.Errorf("enhanced prompt: %w", ErrEmptyResponse)
	}
	return resp.EnhancedPrompt, nil
}
