package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

type scriptedClassifier struct {
	failures map[string]string
	calls    []string
}

func (s *scriptedClassifier) ClassifyTicket(ctx context.Context, t models.Ticket) models.ClassificationResult {
	s.calls = append(s.calls, t.ID)
	if msg, ok := s.failures[t.ID]; ok {
		return models.ClassificationResult{TicketID: t.ID, Error: msg}
	}
	return models.ClassificationResult{
		Success:  true,
		TicketID: t.ID,
		Classification: &models.Classification{
			Category: models.CategoryBilling,
			Priority: models.PriorityLow,
		},
	}
}

func sampleBatch(n int) []models.Ticket {
	out := make([]models.Ticket, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Ticket{
			ID:            fmt.Sprintf("TICK-%03d", i),
			Subject:       "subject",
			Description:   "description",
			CustomerEmail: "user@example.com",
			CustomerTier:  models.TierPro,
			CreatedAt:     "2025-06-14T09:00:00Z",
		})
	}
	return out
}

func TestProcessBatchPreservesOrder(t *testing.T) {
	classifier := &scriptedClassifier{}
	s := BatchService{Classifier: classifier, Logger: zerolog.Nop()}

	batch := sampleBatch(4)
	results := s.ProcessBatch(context.Background(), batch)

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.TicketID != batch[i].ID {
			t.Fatalf("result %d out of order: got %s, want %s", i, r.TicketID, batch[i].ID)
		}
	}
	for i, id := range classifier.calls {
		if id != batch[i].ID {
			t.Fatalf("call %d out of order: got %s, want %s", i, id, batch[i].ID)
		}
	}
}

func TestProcessBatchFailureDoesNotStopBatch(t *testing.T) {
	classifier := &scriptedClassifier{failures: map[string]string{
		"TICK-001": "API error: connection refused",
		"TICK-003": "Failed to parse JSON response: unexpected end of JSON input",
	}}
	s := BatchService{Classifier: classifier, Logger: zerolog.Nop()}

	results := s.ProcessBatch(context.Background(), sampleBatch(4))

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if len(classifier.calls) != 4 {
		t.Fatalf("expected all tickets attempted, got %d calls", len(classifier.calls))
	}
	if results[0].Success || results[2].Success {
		t.Fatalf("expected failures for TICK-001 and TICK-003")
	}
	if !results[1].Success || !results[3].Success {
		t.Fatalf("expected successes for TICK-002 and TICK-004")
	}
	if got := SuccessCount(results); got != 2 {
		t.Fatalf("expected 2 successes, got %d", got)
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	s := BatchService{Classifier: &scriptedClassifier{}, Logger: zerolog.Nop()}
	results := s.ProcessBatch(context.Background(), nil)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestSuccessCountEmpty(t *testing.T) {
	if got := SuccessCount(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
