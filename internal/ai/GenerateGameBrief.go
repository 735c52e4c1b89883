package ai

import (
	"context"
	"fmt"
	"strings"

	"whalestreet_ai_server/internal/ai/prompts"
	"whalestreet_ai_server/internal/types"
)

// GenerateGameBrief writes a player-facing summary of a game's rules.
func (g *Generator) GenerateGameBrief(ctx context.Context, input types.BriefInput) (string, error) {
	if strings.TrimSpace(input.GameName) == "" && strings.TrimSpace(input.GameDescription) == "" {
		return "", fmt.Errorf("%w: game name or description is required", ErrInvalidInput)
	}

	fullPrompt, systemPrompt := prompts.GetGameBriefPrompt(input.GameName, input.GameDescription, input.GameRules)

	output, err := g.complete(ctx, "generate_game_brief", systemPrompt, fullPrompt)
	if err != nil {
		return "", err
	}

	var resp struct {
		GameBrief string `json:"gameBrief"`
	}
	if err := decodeJSON(output, &resp); err != nil {
		return "", fmt.Errorf("failed to parse game brief: %w", err)
	}
	if resp.GameBrief == "" {
		return "", fmt.Errorf("game brief: %w", ErrEmptyResponse)
	}
	return resp.GameBrief, nil
}
