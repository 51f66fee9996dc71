package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseLLMJSON decodes a model response into a field map, tolerating the
// markdown fences some models wrap around JSON even when told not to.
func parseLLMJSON(content string) (map[string]any, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var result map[string]any
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("parse extraction output: %w", err)
	}

	// Null-valued fields are "not found"; keep the bag sparse.
	for k, v := range result {
		if v == nil {
			delete(result, k)
		}
	}

	return result, nil
}
