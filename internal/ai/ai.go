package ai

import (
	"context"

	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

// Classifier never returns an error: every outcome, including transport
// and parse failures, is reported as a ClassificationResult.
type Classifier interface {
	ClassifyTicket(ctx context.Context, t models.Ticket) models.ClassificationResult
}
