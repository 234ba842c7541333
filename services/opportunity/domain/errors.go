package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the opportunity domain. Use errors.Is() to check these.
var (
	// ErrOpportunityNotFound indicates the requested opportunity does not exist.
	ErrOpportunityNotFound = errors.New("opportunity not found")

	// ErrTransitionRejected indicates a status transition failed a guard.
	// Rejected transitions never append to the status history.
	ErrTransitionRejected = errors.New("status transition rejected")

	// ErrValidation indicates structural validation of a creation step failed
	// before any repository call was made.
	ErrValidation = errors.New("validation failed")

	// ErrNotModifiable indicates the opportunity's status no longer allows
	// attaching enrichment sub-resources.
	ErrNotModifiable = errors.New("opportunity can no longer be modified")

	// ErrProblemStatementExists indicates the 1:1 problem statement slot is taken.
	ErrProblemStatementExists = errors.New("problem statement already exists")

	// ErrTimelineExists indicates the 1:1 timeline requirement slot is taken.
	ErrTimelineExists = errors.New("timeline requirement already exists")

	// ErrDuplicateSkill indicates a skill requirement with the same name and
	// type is already attached.
	ErrDuplicateSkill = errors.New("skill requirement already exists")

	// ErrCreationFailed indicates the mandatory first step of the creation
	// saga failed; the saga aborts with no partial state.
	ErrCreationFailed = errors.New("opportunity creation failed")
)

// Violation is a single structural validation failure, addressable by the
// creation step and field that produced it.
type Violation struct {
	Step    string `json:"step"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates all violations found for one or more creation
// steps. It wraps ErrValidation so errors.Is(err, ErrValidation) matches.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError returns a ValidationError for the given violations,
// or nil when the slice is empty.
func NewValidationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s.%s: %s", v.Step, v.Field, v.Message)
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match wrapped ValidationErrors.
func (e *ValidationError) Unwrap() error { return ErrValidation }
