package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the opportunity repository.
const (
	TopicOpportunityCreated       = "opportunity.created"
	TopicOpportunityStatusChanged = "opportunity.status_changed"
)

// OpportunityCreatedEvent is published after a new opportunity base record
// is persisted (Step 1 of the creation saga).
type OpportunityCreatedEvent struct {
	EventID                uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version                int       `json:"version"`  // Schema version; increment on breaking changes
	OpportunityID          uuid.UUID `json:"opportunity_id"`
	Title                  string    `json:"title"`
	CustomerID             uuid.UUID `json:"customer_id"`
	CustomerName           string    `json:"customer_name"`
	SalesManagerID         uuid.UUID `json:"sales_manager_id"`
	Priority               string    `json:"priority"`
	AnnualRecurringRevenue string    `json:"annual_recurring_revenue"`
	Status                 string    `json:"status"`
	OccurredAt             time.Time `json:"occurred_at"`
}

// OpportunityStatusChangedEvent is published after a successful status
// transition, carrying the appended history entry. It covers submit, cancel
// and reactivate alike; consumers switch on To.
type OpportunityStatusChangedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	OpportunityID uuid.UUID `json:"opportunity_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Reason        string    `json:"reason,omitempty"`
	ChangedBy     uuid.UUID `json:"changed_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
