package models

import "fmt"

// Priority is the business priority of an opportunity.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// ParsePriority converts a wire value into a Priority or returns an error.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority: %q", s)
}

func (p Priority) String() string { return string(p) }

// SkillType categorizes a skill requirement.
type SkillType string

const (
	SkillTypeTechnical SkillType = "TECHNICAL"
	SkillTypeSoft      SkillType = "SOFT"
	SkillTypeDomain    SkillType = "DOMAIN"
)

// ParseSkillType converts a wire value into a SkillType or returns an error.
func ParseSkillType(s string) (SkillType, error) {
	switch SkillType(s) {
	case SkillTypeTechnical, SkillTypeSoft, SkillTypeDomain:
		return SkillType(s), nil
	}
	return "", fmt.Errorf("invalid skill type: %q", s)
}

func (t SkillType) String() string { return string(t) }

// Importance marks how essential a skill requirement is for submission.
// An opportunity needs at least one MUST_HAVE skill before it can be submitted.
type Importance string

const (
	ImportanceMustHave   Importance = "MUST_HAVE"
	ImportancePreferred  Importance = "PREFERRED"
	ImportanceNiceToHave Importance = "NICE_TO_HAVE"
)

// ParseImportance converts a wire value into an Importance or returns an error.
func ParseImportance(s string) (Importance, error) {
	switch Importance(s) {
	case ImportanceMustHave, ImportancePreferred, ImportanceNiceToHave:
		return Importance(s), nil
	}
	return "", fmt.Errorf("invalid importance level: %q", s)
}

// IsMandatory reports whether this importance level gates submission.
func (i Importance) IsMandatory() bool { return i == ImportanceMustHave }

func (i Importance) String() string { return string(i) }

// Proficiency is the minimum skill proficiency an architect must hold.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "BEGINNER"
	ProficiencyIntermediate Proficiency = "INTERMEDIATE"
	ProficiencyAdvanced     Proficiency = "ADVANCED"
	ProficiencyExpert       Proficiency = "EXPERT"
)

// ParseProficiency converts a wire value into a Proficiency or returns an error.
func ParseProficiency(s string) (Proficiency, error) {
	switch Proficiency(s) {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return Proficiency(s), nil
	}
	return "", fmt.Errorf("invalid proficiency level: %q", s)
}

func (p Proficiency) String() string { return string(p) }
