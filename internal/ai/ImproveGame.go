package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"whalestreet_ai_server/internal/ai/prompts"
	"whalestreet_ai_server/internal/types"
)

// ImproveGame applies a change request to the current combined game document.
// The returned ImprovedGameCode is again a single combined document.
func (g *Generator) ImproveGame(ctx context.Context, input types.ImproveInput) (types.ImproveOutput, error) {
	if strings.TrimSpace(input.UserRequest) == "" {
		return types.ImproveOutput{}, fmt.Errorf("%w: change request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.CurrentGameCode) == "" {
		return types.ImproveOutput{}, fmt.Errorf("%w: current game code is required", ErrInvalidInput)
	}

	fullPrompt, systemPrompt := prompts.GetImproveGamePrompt(input.CurrentGameCode, input.UserRequest, input.GameDescription)

	output, err := g.complete(ctx, "improve_game", systemPrompt, fullPrompt)
	if err != nil {
		return types.ImproveOutput{}, err
	}

	var improved types.ImproveOutput
	if err := decodeJSON(output, &improved); err != nil {
		g.logger.Warn("Failed to parse LLM JSON output for improvement", zap.Error(err))
		return types.ImproveOutput{}, fmt.Errorf("failed to parse improved game: %w", err)
	}
	if strings.TrimSpace(improved.ImprovedGameCode) == "" {
		return types.ImproveOutput{}, fmt.Errorf("improved game code: %w", ErrEmptyResponse)
	}

	g.logger.Info("Game improved", zap.Int("code_bytes", len(improved.ImprovedGameCode)))
	return improved, nil
}
