package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash-exp"

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// GeminiClassifier classifies tickets through the Google Gemini API.
type GeminiClassifier struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	validate *validator.Validate
	generate func(ctx context.Context, prompt string) (string, error)
}

func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	g := &GeminiClassifier{
		client:   client,
		model:    client.GenerativeModel(model),
		validate: validator.New(),
	}
	g.generate = g.generateContent
	return g, nil
}

func (g *GeminiClassifier) Close() error {
	return g.client.Close()
}

func (g *GeminiClassifier) ClassifyTicket(ctx context.Context, t models.Ticket) models.ClassificationResult {
	if err := g.validate.Struct(t); err != nil {
		return models.ClassificationResult{
			TicketID: t.ID,
			Error:    fmt.Sprintf("Invalid ticket: %v", err),
		}
	}

	raw, err := g.generate(ctx, buildPrompt(t))
	if err != nil {
		return models.ClassificationResult{
			TicketID: t.ID,
			Error:    fmt.Sprintf("API error: %v", err),
		}
	}

	text := extractJSONBlock(raw)
	classification, err := decodeClassification(text)
	if err != nil {
		return models.ClassificationResult{
			TicketID:    t.ID,
			Error:       fmt.Sprintf("Failed to parse JSON response: %v", err),
			RawResponse: text,
		}
	}

	return models.ClassificationResult{
		Success:        true,
		TicketID:       t.ID,
		Classification: &classification,
	}
}

func (g *GeminiClassifier) generateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	text := flattenResponse(resp)
	if text == "" {
		return "", errors.New("response contained no text")
	}
	return text, nil
}

func flattenResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			sb.WriteString(fmt.Sprintf("%v", part))
		}
	}
	return sb.String()
}
