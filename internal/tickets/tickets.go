package tickets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

// LoadFile reads a JSON array of tickets from disk.
func LoadFile(path string) ([]models.Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []models.Ticket
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return out, nil
}
