package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SkillRequirement is a 0..n enrichment naming a skill a matched architect
// must hold. An opportunity cannot be submitted without at least one
// MUST_HAVE requirement.
type SkillRequirement struct {
	ID             uuid.UUID
	OpportunityID  uuid.UUID
	SkillName      string
	SkillType      SkillType
	Importance     Importance
	MinProficiency Proficiency
	CreatedAt      time.Time
}

// NewSkillRequirement constructs a valid SkillRequirement with generated ID.
func NewSkillRequirement(opportunityID uuid.UUID, name string, skillType SkillType,
	importance Importance, minProficiency Proficiency) (*SkillRequirement, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("skill name must not be empty")
	}
	return &SkillRequirement{
		ID:             uuid.New(),
		OpportunityID:  opportunityID,
		SkillName:      name,
		SkillType:      skillType,
		Importance:     importance,
		MinProficiency: minProficiency,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// Matches reports whether another requirement targets the same skill.
// Name comparison is case-insensitive, matching the duplicate-attach guard.
func (s *SkillRequirement) Matches(name string, skillType SkillType) bool {
	return strings.EqualFold(s.SkillName, name) && s.SkillType == skillType
}
