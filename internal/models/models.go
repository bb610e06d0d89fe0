package models

// Categories a ticket can be classified into.
const (
	CategoryBilling        = "BILLING"
	CategoryTechnical      = "TECHNICAL"
	CategoryAccount        = "ACCOUNT"
	CategoryFeatureRequest = "FEATURE_REQUEST"
	CategoryChurn          = "CHURN"
)

// Priority levels, lowest to highest.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Escalation targets.
const (
	EscalateSupportTeam    = "SUPPORT_TEAM"
	EscalateAccountManager = "ACCOUNT_MANAGER"
	EscalateEngineering    = "ENGINEERING"
	EscalateBilling        = "BILLING"
)

// Customer tiers as they appear in ticket payloads.
const (
	TierEnterprise = "enterprise"
	TierPro        = "pro"
	TierFree       = "free"
)

type Ticket struct {
	ID            string `json:"id" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	Description   string `json:"description" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required"`
	CustomerTier  string `json:"customer_tier" validate:"required"`
	CreatedAt     string `json:"created_at" validate:"required"`
}

type Classification struct {
	Category       string   `json:"category"`
	Priority       string   `json:"priority"`
	ShouldEscalate bool     `json:"should_escalate"`
	EscalateTo     *string  `json:"escalate_to,omitempty"`
	Reasoning      string   `json:"reasoning"`
	SuggestedTags  []string `json:"suggested_tags"`
	Confidence     float64  `json:"confidence"`
}

type ClassificationResult struct {
	Success        bool            `json:"success"`
	TicketID       string          `json:"ticket_id"`
	Classification *Classification `json:"classification,omitempty"`
	Error          string          `json:"error,omitempty"`
	RawResponse    string          `json:"raw_response,omitempty"`
}
