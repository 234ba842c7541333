package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MinProblemStatementLength is the minimum content length accepted for a
// problem statement.
const MinProblemStatementLength = 100

// ProblemStatement is the 0..1 enrichment describing the customer problem
// an opportunity is meant to solve. It is owned by exactly one opportunity
// and is never deleted independently.
type ProblemStatement struct {
	ID            uuid.UUID
	OpportunityID uuid.UUID
	Content       string
	CreatedAt     time.Time
}

// NewProblemStatement constructs a valid ProblemStatement with generated ID.
func NewProblemStatement(opportunityID uuid.UUID, content string) (*ProblemStatement, error) {
	if n := utf8.RuneCountInString(content); n < MinProblemStatementLength {
		return nil, fmt.Errorf("problem statement must be at least %d characters, got %d",
			MinProblemStatementLength, n)
	}
	return &ProblemStatement{
		ID:            uuid.New(),
		OpportunityID: opportunityID,
		Content:       content,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
