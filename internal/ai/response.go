package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeJSON unmarshals model output into v, tolerating a surrounding
// ```json fence and prose before or after the object.
func decodeJSON(output string, v any) error {
	cleaned := strings.TrimSpace(output)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	err := json.Unmarshal([]byte(cleaned), v)
	if err == nil {
		return nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if errInner := json.Unmarshal([]byte(cleaned[start:end+1]), v); errInner == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
}
