package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"whalestreet_ai_server/internal/ai/prompts"
	"whalestreet_ai_server/internal/types"
)

// GenerateGameCode turns a natural-language game idea into separate HTML,
// CSS and JavaScript plus a short description of how to play.
func (g *Generator) GenerateGameCode(ctx context.Context, gameIdea string) (types.GameCode, error) {
	if strings.TrimSpace(gameIdea) == "" {
		return types.GameCode{}, fmt.Errorf("%w: game idea is required", ErrInvalidInput)
	}

	fullPrompt, systemPrompt := prompts.GetGameCodePrompt(gameIdea)

	output, err := g.complete(ctx, "generate_game_code", systemPrompt, fullPrompt)
	if err != nil {
		return types.GameCode{}, err
	}

	var code types.GameCode
	if err := decodeJSON(output, &code); err != nil {
		g.logger.Warn("Failed to parse LLM JSON output for game code", zap.Error(err))
		return types.GameCode{}, fmt.Errorf("failed to parse game code: %w", err)
	}
	if code.HTMLCode == "" && code.CSSCode == "" && code.JSCode == "" {
		return types.GameCode{}, fmt.Errorf("game code: %w", ErrEmptyResponse)
	}

	g.logger.Info("Game code generated",
		zap.Int("html_bytes", len(code.HTMLCode)),
		zap.Int("css_bytes", len(code.CSSCode)),
		zap.Int("js_bytes", len(code.JSCode)))
	return code, nil
}
