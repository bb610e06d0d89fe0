package ai

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

// MockClassifier produces deterministic classifications without calling
// any external API. Intended for local development and tests.
type MockClassifier struct {
	validate *validator.Validate
}

func NewMockClassifier() *MockClassifier {
	return &MockClassifier{validate: validator.New()}
}

func (m *MockClassifier) ClassifyTicket(ctx context.Context, t models.Ticket) models.ClassificationResult {
	if err := m.validate.Struct(t); err != nil {
		return models.ClassificationResult{
			TicketID: t.ID,
			Error:    fmt.Sprintf("Invalid ticket: %v", err),
		}
	}

	h := hashTicketID(t.ID)

	categories := []string{
		models.CategoryBilling,
		models.CategoryTechnical,
		models.CategoryAccount,
		models.CategoryFeatureRequest,
		models.CategoryChurn,
	}
	priorities := []string{
		models.PriorityLow,
		models.PriorityMedium,
		models.PriorityHigh,
		models.PriorityUrgent,
	}

	category := categories[int(h%uint64(len(categories)))]
	priority := priorities[int((h/7)%uint64(len(priorities)))]

	confidence := 0.75
	if h%5 == 0 {
		confidence = 0.62
	}

	c := models.Classification{
		Category:      category,
		Priority:      priority,
		Reasoning:     fmt.Sprintf("Mock classification for ticket %s", t.ID),
		SuggestedTags: []string{strings.ToLower(category), strings.ToLower(priority)},
		Confidence:    confidence,
	}

	if strings.EqualFold(t.CustomerTier, models.TierEnterprise) || priority == models.PriorityUrgent {
		c.ShouldEscalate = true
		target := models.EscalateAccountManager
		if category == models.CategoryTechnical {
			target = models.EscalateEngineering
		}
		c.EscalateTo = &target
	}

	return models.ClassificationResult{
		Success:        true,
		TicketID:       t.ID,
		Classification: &c,
	}
}

func hashTicketID(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}
