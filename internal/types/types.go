package types

// GameCode is the structure expected from the LLM for a newly generated game.
type GameCode struct {
	HTMLCode        string `json:"htmlCode"`
	CSSCode         string `json:"cssCode"`
	JSCode          string `json:"jsCode"`
	GameDescription string `json:"gameDescription"`
}

// ImproveInput is what the improvement flow sends about the current game.
type ImproveInput struct {
	CurrentGameCode string `json:"currentGameCode"` // combined document
	UserRequest     string `json:"userRequest"`
	GameDescription string `json:"gameDescription"`
}

// ImproveOutput is the structure expected from the LLM after an improvement.
type ImproveOutput struct {
	ImprovedGameCode       string `json:"improvedGameCode"` // combined document
	Review                 string `json:"review"`
	UpdatedGameDescription string `json:"updatedGameDescription"`
}

// BriefInput describes a game for which a player-facing brief is written.
type BriefInput struct {
	GameName        string `json:"gameName"`
	GameDescription string `json:"gameDescription"`
	GameRules       string `json:"gameRules"`
}
