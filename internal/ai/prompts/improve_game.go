package prompts

import "fmt"

// GetImproveGamePrompt returns the user prompt and system prompt that apply
// a change request to an existing combined HTML document.
func GetImproveGamePrompt(currentGameCode, userRequest, gameDescription string) (string, string) {
	prompt := `
		The current game code is:
		` + "```html" + `
		%s
		` + "```" + `

		The user has requested the following changes:
		%s

		Here is the current game description:
		%s

		Implement the requested changes, ensuring that the game remains functional and adheres to web standards.
		Also update the game description with any relevant changes.

		Return the complete, improved code as a single HTML document with the CSS inside one <style> element in the
		<head> and the JavaScript inside <script> elements in the <body>. Make sure the improved code is complete and runnable.

		Respond ONLY with a JSON object in the following format:
		` + "```json" + `
		{
			"improvedGameCode": "<!DOCTYPE html>...",
			"review": "what changed and any potential issues",
			"updatedGameDescription": "..."
		}
		` + "```" + `
	`

	fullPrompt := fmt.Sprintf(prompt, currentGameCode, userRequest, gameDescription)
	systemPrompt := `You are a game developer tasked with improving an existing HTML5 game based on user feedback.`

	return fullPrompt, systemPrompt
}
