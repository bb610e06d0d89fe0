package ai

import (
	"testing"
)

func TestExtractJSONBlockJSONFence(t *testing.T) {
	text := "Here is the classification:\n```json\n{\"category\": \"BILLING\"}\n```\nLet me know if you need anything else."
	got := extractJSONBlock(text)
	if got != `{"category": "BILLING"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONBlockGenericFence(t *testing.T) {
	text := "```\n{\"category\": \"TECHNICAL\"}\n```"
	got := extractJSONBlock(text)
	if got != `{"category": "TECHNICAL"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONBlockNoFence(t *testing.T) {
	text := "  {\"category\": \"ACCOUNT\"}  \n"
	got := extractJSONBlock(text)
	if got != `{"category": "ACCOUNT"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONBlockUnclosedFence(t *testing.T) {
	text := "```json\n{\"category\": \"CHURN\"}"
	got := extractJSONBlock(text)
	if got != `{"category": "CHURN"}` {
		t.Fatalf("expected tail after unclosed fence, got %q", got)
	}
}

func TestExtractJSONBlockKeepsFirstBlock(t *testing.T) {
	text := "```json\n{\"category\": \"BILLING\"}\n```\n```json\n{\"category\": \"CHURN\"}\n```"
	got := extractJSONBlock(text)
	if got != `{"category": "BILLING"}` {
		t.Fatalf("expected first block, got %q", got)
	}
}

func TestExtractJSONBlockJSONFenceWins(t *testing.T) {
	text := "```\nprose\n```\n```json\n{\"category\": \"ACCOUNT\"}\n```"
	got := extractJSONBlock(text)
	if got != `{"category": "ACCOUNT"}` {
		t.Fatalf("expected json fence to win, got %q", got)
	}
}

func TestDecodeClassificationFullPayload(t *testing.T) {
	text := `{
		"category": "TECHNICAL",
		"priority": "URGENT",
		"should_escalate": true,
		"escalate_to": "ENGINEERING",
		"reasoning": "Data loss for an enterprise customer",
		"suggested_tags": ["data-loss", "export"],
		"confidence": 0.97
	}`
	c, err := decodeClassification(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Category != "TECHNICAL" || c.Priority != "URGENT" {
		t.Fatalf("unexpected classification: %+v", c)
	}
	if !c.ShouldEscalate || c.EscalateTo == nil || *c.EscalateTo != "ENGINEERING" {
		t.Fatalf("unexpected escalation: %+v", c)
	}
	if c.Confidence != 0.97 || len(c.SuggestedTags) != 2 {
		t.Fatalf("unexpected optional fields: %+v", c)
	}
}

func TestDecodeClassificationMinimalPayload(t *testing.T) {
	c, err := decodeClassification(`{"category": "BILLING", "priority": "LOW"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.ShouldEscalate || c.EscalateTo != nil || c.Confidence != 0 {
		t.Fatalf("expected zero values for omitted fields, got %+v", c)
	}
	if c.SuggestedTags != nil {
		t.Fatalf("expected nil tags, got %v", c.SuggestedTags)
	}
}

func TestDecodeClassificationNullEscalateTo(t *testing.T) {
	c, err := decodeClassification(`{"category": "BILLING", "priority": "LOW", "escalate_to": null}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.EscalateTo != nil {
		t.Fatalf("expected nil escalate_to, got %v", *c.EscalateTo)
	}
}

func TestDecodeClassificationUnknownKeysIgnored(t *testing.T) {
	c, err := decodeClassification(`{"category": "ACCOUNT", "priority": "HIGH", "auto_resolvable": true, "sentiment": "angry"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Category != "ACCOUNT" {
		t.Fatalf("unexpected category: %s", c.Category)
	}
}

func TestDecodeClassificationMissingCategory(t *testing.T) {
	if _, err := decodeClassification(`{"priority": "LOW"}`); err == nil {
		t.Fatalf("expected error for missing category")
	}
}

func TestDecodeClassificationMissingPriority(t *testing.T) {
	if _, err := decodeClassification(`{"category": "BILLING"}`); err == nil {
		t.Fatalf("expected error for missing priority")
	}
}

func TestDecodeClassificationNotAnObject(t *testing.T) {
	if _, err := decodeClassification(`["BILLING", "LOW"]`); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
}

func TestDecodeClassificationNotJSON(t *testing.T) {
	if _, err := decodeClassification("I believe this ticket is about billing."); err == nil {
		t.Fatalf("expected error for plain text")
	}
}
