package ai

import (
	"fmt"

	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
)

const classificationRules = `You are a customer support ticket classification agent for FlowTask, a project management SaaS platform.

CLASSIFICATION RULES:

1. CUSTOMER TIER TRIGGERS:
   - Enterprise customers: ALWAYS escalate (regardless of issue)
   - Pro customers: Evaluate based on other criteria

2. SECURITY TRIGGERS (ALWAYS escalate):
   - Login/password issues with urgency
   - Account access problems
   - Any credential-related requests

3. RISK TRIGGERS (ALWAYS escalate):
   - Churn threats: mentions of "cancel", "switching", "competitor"
   - Legal language: "lawyer", "lawsuit", "legal action"
   - Angry/hostile sentiment
   - Financial disputes or refund requests

4. TECHNICAL TRIGGERS (ALWAYS escalate):
   - Bugs affecting operations for >24 hours
   - Data loss or export failures
   - Performance degradation

5. CAN RESOLVE AUTONOMOUSLY:
   - Simple billing inquiries (invoice requests)
   - Feature requests (log and acknowledge, don't escalate)
   - How-to questions with clear answers
   - Known system behaviors

OUTPUT FORMAT:
Respond with ONLY valid JSON in this exact format:
{
  "category": "BILLING|TECHNICAL|ACCOUNT|FEATURE_REQUEST|CHURN",
  "priority": "LOW|MEDIUM|HIGH|URGENT",
  "should_escalate": true or false,
  "escalate_to": "SUPPORT_TEAM|ACCOUNT_MANAGER|ENGINEERING|BILLING" or null,
  "reasoning": "Brief explanation of classification decision",
  "suggested_tags": ["tag1", "tag2", "tag3"],
  "confidence": 0.0 to 1.0
}

CRITICAL: Output ONLY the JSON object. No markdown formatting, no other text before or after.`

// buildPrompt keeps the field order stable so identical tickets always
// produce identical prompts.
func buildPrompt(t models.Ticket) string {
	return fmt.Sprintf(`%s

Now classify this customer support ticket:

Ticket ID: %s
Subject: %s
Description: %s
Customer Email: %s
Customer Tier: %s
Created: %s

Provide classification in JSON format.`,
		classificationRules, t.ID, t.Subject, t.Description, t.CustomerEmail, t.CustomerTier, t.CreatedAt)
}
