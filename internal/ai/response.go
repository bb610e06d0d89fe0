package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

// extractJSONBlock strips a markdown code fence wrapping a model
// response. A "```json" fence takes precedence over a bare "```" fence;
// with an unclosed fence everything after the opener is kept.
func extractJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if _, after, found := strings.Cut(text, "```json"); found {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	if _, after, found := strings.Cut(text, "```"); found {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	return text
}

// decodeClassification accepts any JSON object carrying at least a
// category and a priority. Unknown keys are ignored, missing optional
// fields keep their zero values.
func decodeClassification(text string) (models.Classification, error) {
	var c models.Classification
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return models.Classification{}, err
	}
	if c.Category == "" {
		return models.Classification{}, errors.New("missing required field: category")
	}
	if c.Priority == "" {
		return models.Classification{}, errors.New("missing required field: priority")
	}
	return c, nil
}
