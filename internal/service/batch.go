package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devaki264/cs-agent-workflow-engine/internal/ai"
	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

// BatchService runs a set of tickets through a classifier one by one.
// A failed ticket never stops the batch.
type BatchService struct {
	Classifier ai.Classifier
	Logger     zerolog.Logger
}

// ProcessBatch returns one result per input ticket, in input order.
func (s *BatchService) ProcessBatch(ctx context.Context, tickets []models.Ticket) []models.ClassificationResult {
	total := len(tickets)
	s.Logger.Info().Int("total", total).Msg("processing tickets")

	results := make([]models.ClassificationResult, 0, total)
	for i, t := range tickets {
		result := s.Classifier.ClassifyTicket(ctx, t)
		if result.Success {
			s.Logger.Info().
				Int("index", i+1).
				Int("total", total).
				Str("ticket_id", t.ID).
				Msg("ticket classified")
		} else {
			s.Logger.Warn().
				Int("index", i+1).
				Int("total", total).
				Str("ticket_id", t.ID).
				Str("error", result.Error).
				Msg("ticket classification failed")
		}
		results = append(results, result)
	}

	s.Logger.Info().
		Int("succeeded", SuccessCount(results)).
		Int("total", total).
		Msg("batch complete")
	return results
}

func SuccessCount(results []models.ClassificationResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}
