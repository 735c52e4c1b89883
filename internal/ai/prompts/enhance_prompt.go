package prompts

import "fmt"

// GetEnhancePromptPrompt returns the prompts that expand a rough game idea
// into a more detailed one.
func GetEnhancePromptPrompt(originalPrompt string) (string, string) {
	prompt := `
		Enhance the following game idea prompt to make it more detailed and creative, so the generated game
		aligns better with the user's vision.

		Original Prompt: %s

		Respond ONLY with a JSON object: {"enhancedPrompt": "..."}
	`

	fullPrompt := fmt.Sprintf(prompt, originalPrompt)
	systemPrompt := `You are an expert game designer.`

	return fullPrompt, systemPrompt
}
