// Package services contains stateless domain services for the opportunity
// bounded context. The step validators here form the validation engine that
// gates the creation wizard: each validator is a pure function over a typed
// input struct and returns every violation it finds rather than stopping at
// the first. Steps are independent — validity of one step never depends on
// another step's content, so the creation saga can attach them in any order.
package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
)

// Step names used in Violation.Step, matching the creation wizard tabs.
const (
	StepBasics           = "basics"
	StepProblemStatement = "problem_statement"
	StepSkills           = "skills"
	StepTimeline         = "timeline"
)

// BasicsInput holds the raw fields of the basics step. Priority and
// AnnualRecurringRevenue arrive as strings from the form boundary and are
// parsed here.
type BasicsInput struct {
	Title                  string
	CustomerName           string
	Priority               string
	AnnualRecurringRevenue string
	Description            string
	RegionName             string
}

// ProblemStatementInput holds the raw fields of the problem-statement step.
type ProblemStatementInput struct {
	Content string
}

// SkillInput is one entry of the skills step.
type SkillInput struct {
	SkillName      string
	SkillType      string
	Importance     string
	MinProficiency string
}

// SkillsInput holds the raw fields of the skills step.
type SkillsInput struct {
	Skills []SkillInput
}

// TimelineInput holds the raw fields of the timeline step. Zero times mean
// the field was not provided.
type TimelineInput struct {
	StartDate    time.Time
	EndDate      time.Time
	IsFlexible   bool
	SpecificDays []time.Time
}

// ValidateBasics checks the basics step. All violations are collected.
func ValidateBasics(in BasicsInput) []oppdomain.Violation {
	var vs []oppdomain.Violation
	if strings.TrimSpace(in.Title) == "" {
		vs = append(vs, violation(StepBasics, "title", "title is required"))
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		vs = append(vs, violation(StepBasics, "customer_name", "customer name is required"))
	}
	if _, err := models.ParsePriority(in.Priority); err != nil {
		vs = append(vs, violation(StepBasics, "priority",
			"priority must be one of LOW, MEDIUM, HIGH, CRITICAL"))
	}
	if arr, err := decimal.NewFromString(strings.TrimSpace(in.AnnualRecurringRevenue)); err != nil {
		vs = append(vs, violation(StepBasics, "annual_recurring_revenue",
			"annual recurring revenue must be a number"))
	} else if arr.IsNegative() {
		vs = append(vs, violation(StepBasics, "annual_recurring_revenue",
			"annual recurring revenue must not be negative"))
	}
	if strings.TrimSpace(in.Description) == "" {
		vs = append(vs, violation(StepBasics, "description", "description is required"))
	}
	if strings.TrimSpace(in.RegionName) == "" {
		vs = append(vs, violation(StepBasics, "region_name", "region name is required"))
	}
	return vs
}

// ValidateProblemStatement checks the problem-statement step.
func ValidateProblemStatement(in ProblemStatementInput) []oppdomain.Violation {
	var vs []oppdomain.Violation
	if strings.TrimSpace(in.Content) == "" {
		vs = append(vs, violation(StepProblemStatement, "content", "content is required"))
		return vs
	}
	if utf8.RuneCountInString(in.Content) < models.MinProblemStatementLength {
		vs = append(vs, violation(StepProblemStatement, "content",
			fmt.Sprintf("content must be at least %d characters", models.MinProblemStatementLength)))
	}
	return vs
}

// ValidateSkills checks the skills step: at least one entry, at least one
// MUST_HAVE entry, and every entry structurally valid.
func ValidateSkills(in SkillsInput) []oppdomain.Violation {
	var vs []oppdomain.Violation
	if len(in.Skills) == 0 {
		vs = append(vs, violation(StepSkills, "skills", "at least one skill is required"))
		return vs
	}

	hasMustHave := false
	for i, s := range in.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		if strings.TrimSpace(s.SkillName) == "" {
			vs = append(vs, violation(StepSkills, field+".skill_name", "skill name is required"))
		}
		if _, err := models.ParseSkillType(s.SkillType); err != nil {
			vs = append(vs, violation(StepSkills, field+".skill_type",
				"skill type must be one of TECHNICAL, SOFT, DOMAIN"))
		}
		imp, err := models.ParseImportance(s.Importance)
		if err != nil {
			vs = append(vs, violation(StepSkills, field+".importance_level",
				"importance must be one of MUST_HAVE, PREFERRED, NICE_TO_HAVE"))
		} else if imp.IsMandatory() {
			hasMustHave = true
		}
		if _, err := models.ParseProficiency(s.MinProficiency); err != nil {
			vs = append(vs, violation(StepSkills, field+".minimum_proficiency_level",
				"proficiency must be one of BEGINNER, INTERMEDIATE, ADVANCED, EXPERT"))
		}
	}
	if !hasMustHave {
		vs = append(vs, violation(StepSkills, "skills", "at least one MUST_HAVE skill is required"))
	}
	return vs
}

// ValidateTimeline checks the timeline step: both dates present, end
// strictly after start, specific days inside the range.
func ValidateTimeline(in TimelineInput) []oppdomain.Violation {
	var vs []oppdomain.Violation
	if in.StartDate.IsZero() {
		vs = append(vs, violation(StepTimeline, "start_date", "start date is required"))
	}
	if in.EndDate.IsZero() {
		vs = append(vs, violation(StepTimeline, "end_date", "end date is required"))
	}
	if len(vs) > 0 {
		return vs
	}
	if !in.EndDate.After(in.StartDate) {
		vs = append(vs, violation(StepTimeline, "end_date", "end date must be after start date"))
	}
	for i, day := range in.SpecificDays {
		if day.Before(in.StartDate) || day.After(in.EndDate) {
			vs = append(vs, violation(StepTimeline, fmt.Sprintf("specific_days[%d]", i),
				"specific day is outside the timeline range"))
		}
	}
	return vs
}

func violation(step, field, message string) oppdomain.Violation {
	return oppdomain.Violation{Step: step, Field: field, Message: message}
}
