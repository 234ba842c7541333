package models

import "fmt"

// Status is the lifecycle state of an opportunity.
//
// The legal transition graph:
//
//	DRAFT → SUBMITTED → MATCHING_IN_PROGRESS → MATCHES_FOUND → ARCHITECT_SELECTED → COMPLETED
//
// Every non-final status can transition to CANCELLED. A CANCELLED
// opportunity can be reactivated back to the active status it held before
// cancellation. COMPLETED is terminal.
type Status string

const (
	StatusDraft              Status = "DRAFT"
	StatusSubmitted          Status = "SUBMITTED"
	StatusMatchingInProgress Status = "MATCHING_IN_PROGRESS"
	StatusMatchesFound       Status = "MATCHES_FOUND"
	StatusArchitectSelected  Status = "ARCHITECT_SELECTED"
	StatusCompleted          Status = "COMPLETED"
	StatusCancelled          Status = "CANCELLED"
)

// statusTransitions encodes the legal transition table. Reactivation is
// modeled as CANCELLED → any active status; Reactivate picks the target
// from the status history.
var statusTransitions = map[Status][]Status{
	StatusDraft:              {StatusSubmitted, StatusCancelled},
	StatusSubmitted:          {StatusMatchingInProgress, StatusCancelled},
	StatusMatchingInProgress: {StatusMatchesFound, StatusCancelled},
	StatusMatchesFound:       {StatusArchitectSelected, StatusCancelled},
	StatusArchitectSelected:  {StatusCompleted, StatusCancelled},
	StatusCompleted:          {},
	StatusCancelled: {
		StatusDraft, StatusSubmitted, StatusMatchingInProgress,
		StatusMatchesFound, StatusArchitectSelected,
	},
}

// ParseStatus converts a wire value into a Status or returns an error.
func ParseStatus(s string) (Status, error) {
	if _, ok := statusTransitions[Status(s)]; !ok {
		return "", fmt.Errorf("invalid status: %q", s)
	}
	return Status(s), nil
}

// CanTransitionTo reports whether the transition s → to is legal.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsModifiable reports whether enrichment sub-resources may still be
// attached while the opportunity is in this status. Attachment is only
// allowed before submission.
func (s Status) IsModifiable() bool {
	return s == StatusDraft
}

// IsFinal reports whether the status terminates the lifecycle.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsActive reports whether the status is a live, non-cancelled state.
// Reactivation restores the most recent active status from history.
func (s Status) IsActive() bool {
	return !s.IsFinal()
}

func (s Status) String() string { return string(s) }
