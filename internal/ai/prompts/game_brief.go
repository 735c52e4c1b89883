package prompts

import "fmt"

func GetGameBriefPrompt(gameName, gameDescription, gameRules string) (string, string) {
	prompt := `
		Generate a brief description of the game, including the rules and how to play, so other users can understand the game.

		Game Name: %s
		Game Description: %s
		Game Rules: %s

		Respond ONLY with a JSON object: {"gameBrief": "..."}
	`

	fullPrompt := fmt.Sprintf(prompt, gameName, gameDescription, gameRules)
	systemPrompt := `You are an expert game designer.`

	return fullPrompt, systemPrompt
}
