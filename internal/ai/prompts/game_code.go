package prompts

import "fmt"

// GetGameCodePrompt returns the user prompt and system prompt that turn a
// game idea into separate HTML, CSS and JavaScript.
func GetGameCodePrompt(gameIdea string) (string, string) {
	prompt := `
		You take a game idea and generate the HTML, CSS, and JavaScript code for it.

		The game idea is:
		---
		%s
		---

		You will also generate a brief description of the game and how to play it.

		Ensure the HTML includes all necessary elements, the CSS styles them appropriately, and the JavaScript provides the game logic.
		The game should be playable in a web browser. Keep code concise and well-commented.
		The HTML must be body content only: no <html>, <head>, <style> or <script> wrappers.

		Respond ONLY with a JSON object in the following format:
		` + "```json" + `
		{
			"htmlCode": "...",
			"cssCode": "...",
			"jsCode": "...",
			"gameDescription": "..."
		}
		` + "```" + `
	`

	fullPrompt := fmt.Sprintf(prompt, gameIdea)
	systemPrompt := `You are a game developer AI that writes small, complete browser games.`

	return fullPrompt, systemPrompt
}
