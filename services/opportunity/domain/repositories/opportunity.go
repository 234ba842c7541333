package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// Filter narrows list queries. Nil fields match everything.
type Filter struct {
	Status         *models.Status
	Priority       *models.Priority
	CustomerID     *uuid.UUID
	SalesManagerID *uuid.UUID
}

// OpportunityRepository is the persistence interface for the Opportunity
// aggregate. The domain layer owns this interface; infrastructure implements
// it. The store must provide strict single-record read-after-write
// consistency; cross-record transactions are not required.
//
// The 1:1 cardinality of problem statement and timeline is enforced here
// (unique constraints), not by the attacher layer.
type OpportunityRepository interface {
	// Save persists a new opportunity base record together with its initial
	// status history entry, and publishes OpportunityCreatedEvent.
	Save(ctx context.Context, o *models.Opportunity) error

	// GetByID loads the full aggregate: base record, sub-resources and the
	// ordered status history. Returns ErrOpportunityNotFound when missing.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error)

	// Find retrieves a paginated list of base records (no sub-resources)
	// plus the total count ignoring pagination.
	Find(ctx context.Context, f Filter, opts QueryOpts) ([]*models.Opportunity, int, error)

	// UpdateStatus persists the aggregate's current status fields and
	// appends the latest history entry in one transaction, publishing
	// OpportunityStatusChangedEvent. Either both writes happen or neither.
	UpdateStatus(ctx context.Context, o *models.Opportunity) error

	// AddProblemStatement persists the 1:1 problem statement.
	// Returns ErrProblemStatementExists when the slot is already taken.
	AddProblemStatement(ctx context.Context, ps *models.ProblemStatement) error

	// AddSkillRequirement persists one skill requirement.
	// Returns ErrDuplicateSkill on a (name, type) uniqueness violation.
	AddSkillRequirement(ctx context.Context, sr *models.SkillRequirement) error

	// AddTimeline persists the 1:1 timeline requirement.
	// Returns ErrTimelineExists when the slot is already taken.
	AddTimeline(ctx context.Context, tl *models.TimelineRequirement) error

	// Exists reports whether an opportunity with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
