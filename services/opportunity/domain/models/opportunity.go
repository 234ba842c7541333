package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
)

// ReactivationWindow is how long a cancelled opportunity stays reactivatable.
const ReactivationWindow = 90 * 24 * time.Hour

// Geographic captures where the engagement must be staffed.
type Geographic struct {
	RegionName               string
	RequiresPhysicalPresence bool
	AllowsRemoteWork         bool
}

// StatusChange is one append-only status history entry. The last entry's
// Status always equals the aggregate's current Status.
type StatusChange struct {
	ID        uuid.UUID
	Status    Status
	Reason    string // mandatory for cancellations, optional otherwise
	ChangedBy uuid.UUID
	ChangedAt time.Time
}

// Opportunity is the aggregate root for a customer engagement awaiting
// solution-architect matching. Sub-resources (problem statement, skill
// requirements, timeline) are owned exclusively by the opportunity and are
// persisted independently of the base record, but the aggregate is the unit
// of consistency for status transitions.
type Opportunity struct {
	ID                     uuid.UUID
	Title                  string
	CustomerID             uuid.UUID
	CustomerName           string
	SalesManagerID         uuid.UUID
	Description            string
	Priority               Priority
	AnnualRecurringRevenue decimal.Decimal
	Geographic             Geographic
	Status                 Status

	ProblemStatement  *ProblemStatement
	SkillRequirements []SkillRequirement
	Timeline          *TimelineRequirement
	StatusHistory     []StatusChange

	CancelledAt          *time.Time
	CancellationReason   string
	ReactivationDeadline *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOpportunity constructs a DRAFT opportunity with a server-generated ID
// and the initial status history entry. Caller-supplied identifiers are
// never trusted for new aggregates.
func NewOpportunity(title string, customerID uuid.UUID, customerName string,
	salesManagerID uuid.UUID, description string, priority Priority,
	arr decimal.Decimal, geo Geographic) (*Opportunity, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title must not be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("customer name must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description must not be empty")
	}
	if strings.TrimSpace(geo.RegionName) == "" {
		return nil, fmt.Errorf("region name must not be empty")
	}
	if arr.IsNegative() {
		return nil, fmt.Errorf("annual recurring revenue must not be negative")
	}

	now := time.Now().UTC()
	o := &Opportunity{
		ID:                     uuid.New(),
		Title:                  title,
		CustomerID:             customerID,
		CustomerName:           customerName,
		SalesManagerID:         salesManagerID,
		Description:            description,
		Priority:               priority,
		AnnualRecurringRevenue: arr,
		Geographic:             geo,
		Status:                 StatusDraft,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	o.StatusHistory = []StatusChange{{
		ID:        uuid.New(),
		Status:    StatusDraft,
		Reason:    "Opportunity created",
		ChangedBy: salesManagerID,
		ChangedAt: now,
	}}
	return o, nil
}

// transition moves the aggregate to a new status and appends exactly one
// history entry. All guards run before any mutation, so a rejected
// transition leaves both the status and the history untouched.
func (o *Opportunity) transition(to Status, changedBy uuid.UUID, reason string) error {
	if !o.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: cannot transition from %s to %s",
			oppdomain.ErrTransitionRejected, o.Status, to)
	}
	now := time.Now().UTC()
	o.StatusHistory = append(o.StatusHistory, StatusChange{
		ID:        uuid.New(),
		Status:    to,
		Reason:    reason,
		ChangedBy: changedBy,
		ChangedAt: now,
	})
	o.Status = to
	o.UpdatedAt = now
	return nil
}

// Submit moves a DRAFT opportunity to SUBMITTED. The guard requires the
// opportunity to be fully specified: a problem statement of sufficient
// length, at least one skill requirement with at least one MUST_HAVE entry,
// and a timeline.
func (o *Opportunity) Submit(submittedBy uuid.UUID) error {
	if o.Status != StatusDraft {
		return fmt.Errorf("%w: only draft opportunities can be submitted (status %s)",
			oppdomain.ErrTransitionRejected, o.Status)
	}
	if o.ProblemStatement == nil {
		return fmt.Errorf("%w: problem statement is required before submission",
			oppdomain.ErrTransitionRejected)
	}
	if utf8.RuneCountInString(o.ProblemStatement.Content) < MinProblemStatementLength {
		return fmt.Errorf("%w: problem statement must be at least %d characters",
			oppdomain.ErrTransitionRejected, MinProblemStatementLength)
	}
	if len(o.SkillRequirements) == 0 {
		return fmt.Errorf("%w: at least one skill requirement is required before submission",
			oppdomain.ErrTransitionRejected)
	}
	if len(o.MustHaveSkills()) == 0 {
		return fmt.Errorf("%w: at least one MUST_HAVE skill is required before submission",
			oppdomain.ErrTransitionRejected)
	}
	if o.Timeline == nil {
		return fmt.Errorf("%w: timeline requirement is required before submission",
			oppdomain.ErrTransitionRejected)
	}
	return o.transition(StatusSubmitted, submittedBy, "Opportunity submitted for matching")
}

// Cancel moves any non-final opportunity to CANCELLED. A non-empty reason is
// mandatory and is recorded both on the aggregate and in the history entry.
// The opportunity stays reactivatable for ReactivationWindow.
func (o *Opportunity) Cancel(cancelledBy uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: cancellation reason is required", oppdomain.ErrTransitionRejected)
	}
	if o.Status.IsFinal() {
		return fmt.Errorf("%w: cannot cancel an opportunity in %s status",
			oppdomain.ErrTransitionRejected, o.Status)
	}
	if err := o.transition(StatusCancelled, cancelledBy, reason); err != nil {
		return err
	}
	now := o.UpdatedAt
	deadline := now.Add(ReactivationWindow)
	o.CancelledAt = &now
	o.CancellationReason = reason
	o.ReactivationDeadline = &deadline
	return nil
}

// Reactivate restores a CANCELLED opportunity to the active status it held
// before cancellation, determined by walking the status history backwards.
// A fresh history entry is appended rather than silently reverting.
func (o *Opportunity) Reactivate(reactivatedBy uuid.UUID) error {
	if o.Status != StatusCancelled {
		return fmt.Errorf("%w: only cancelled opportunities can be reactivated",
			oppdomain.ErrTransitionRejected)
	}
	if o.ReactivationDeadline != nil && time.Now().UTC().After(*o.ReactivationDeadline) {
		return fmt.Errorf("%w: reactivation window has expired", oppdomain.ErrTransitionRejected)
	}
	if err := o.transition(o.lastActiveStatus(), reactivatedBy, "Opportunity reactivated"); err != nil {
		return err
	}
	o.CancelledAt = nil
	o.CancellationReason = ""
	o.ReactivationDeadline = nil
	return nil
}

// Complete marks the opportunity COMPLETED. The transition is externally
// driven by the matching pipeline once an architect engagement finishes.
func (o *Opportunity) Complete(completedBy uuid.UUID, reason string) error {
	return o.transition(StatusCompleted, completedBy, reason)
}

// lastActiveStatus returns the most recent non-cancelled status in history,
// defaulting to DRAFT when none is found.
func (o *Opportunity) lastActiveStatus() Status {
	for i := len(o.StatusHistory) - 1; i >= 0; i-- {
		if o.StatusHistory[i].Status != StatusCancelled {
			return o.StatusHistory[i].Status
		}
	}
	return StatusDraft
}

// AttachProblemStatement validates and binds the 1:1 problem statement.
// Allowed only while the opportunity is a DRAFT.
func (o *Opportunity) AttachProblemStatement(ps *ProblemStatement) error {
	if !o.Status.IsModifiable() {
		return fmt.Errorf("%w: problem statement can only be added in %s status",
			oppdomain.ErrNotModifiable, StatusDraft)
	}
	if o.ProblemStatement != nil {
		return oppdomain.ErrProblemStatementExists
	}
	o.ProblemStatement = ps
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// AttachSkillRequirement adds a skill requirement, rejecting duplicates of
// the same (name, type) pair. Allowed only while the opportunity is a DRAFT.
func (o *Opportunity) AttachSkillRequirement(sr *SkillRequirement) error {
	if !o.Status.IsModifiable() {
		return fmt.Errorf("%w: skill requirements can only be added in %s status",
			oppdomain.ErrNotModifiable, StatusDraft)
	}
	for i := range o.SkillRequirements {
		if o.SkillRequirements[i].Matches(sr.SkillName, sr.SkillType) {
			return fmt.Errorf("%w: %s", oppdomain.ErrDuplicateSkill, sr.SkillName)
		}
	}
	o.SkillRequirements = append(o.SkillRequirements, *sr)
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// AttachTimeline validates and binds the 1:1 timeline requirement.
// Allowed only while the opportunity is a DRAFT.
func (o *Opportunity) AttachTimeline(tl *TimelineRequirement) error {
	if !o.Status.IsModifiable() {
		return fmt.Errorf("%w: timeline requirement can only be added in %s status",
			oppdomain.ErrNotModifiable, StatusDraft)
	}
	if o.Timeline != nil {
		return oppdomain.ErrTimelineExists
	}
	o.Timeline = tl
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// MustHaveSkills returns the skill requirements marked MUST_HAVE.
func (o *Opportunity) MustHaveSkills() []SkillRequirement {
	var out []SkillRequirement
	for _, sr := range o.SkillRequirements {
		if sr.Importance.IsMandatory() {
			out = append(out, sr)
		}
	}
	return out
}

// IsReadyForMatching reports whether a submitted opportunity carries every
// enrichment the matching pipeline needs. Matching itself is out of scope;
// this only prepares the gate.
func (o *Opportunity) IsReadyForMatching() bool {
	return o.Status == StatusSubmitted &&
		o.ProblemStatement != nil &&
		len(o.SkillRequirements) > 0 &&
		o.Timeline != nil
}
