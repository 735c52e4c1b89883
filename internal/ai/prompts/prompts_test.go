package prompts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"whalestreet_ai_server/internal/ai/prompts"
)

func TestPromptsEmbedInputs(t *testing.T) {
	full, system := prompts.GetGameCodePrompt("a snake game")
	assert.Contains(t, full, "a snake game")
	assert.Contains(t, full, `"htmlCode"`)
	assert.NotEmpty(t, system)

	full, _ = prompts.GetImproveGamePrompt("<!DOCTYPE html><p>x</p>", "make it blue", "a demo")
	assert.Contains(t, full, "<!DOCTYPE html><p>x</p>")
	assert.Contains(t, full, "make it blue")
	assert.Contains(t, full, "a demo")
	assert.Contains(t, full, `"improvedGameCode"`)

	full, _ = prompts.GetEnhancePromptPrompt("pong")
	assert.Contains(t, full, "Original Prompt: pong")

	full, _ = prompts.GetGameBriefPrompt("Pong", "paddles", "first to 11")
	assert.Contains(t, full, "Game Name: Pong")
	assert.Contains(t, full, "Game Rules: first to 11")
}

func TestPromptsKeepPercentSigns(t *testing.T) {
	full, _ := prompts.GetImproveGamePrompt("width: 100%;", "50% faster", "")

	assert.Contains(t, full, "width: 100%;")
	assert.Contains(t, full, "50% faster")
}
