package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimelineRequirement is the 0..1 enrichment bounding the engagement period.
// EndDate is strictly after StartDate; SpecificDays, when present, is an
// ordered list of days that must all fall inside [StartDate, EndDate].
type TimelineRequirement struct {
	ID            uuid.UUID
	OpportunityID uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	IsFlexible    bool
	SpecificDays  []time.Time
	CreatedAt     time.Time
}

// NewTimelineRequirement constructs a valid TimelineRequirement with generated ID.
func NewTimelineRequirement(opportunityID uuid.UUID, start, end time.Time,
	isFlexible bool, specificDays []time.Time) (*TimelineRequirement, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("start date and end date are required")
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end date must be after start date")
	}
	for _, day := range specificDays {
		if day.Before(start) || day.After(end) {
			return nil, fmt.Errorf("specific day %s is outside the timeline range",
				day.Format("2006-01-02"))
		}
	}
	return &TimelineRequirement{
		ID:            uuid.New(),
		OpportunityID: opportunityID,
		StartDate:     start,
		EndDate:       end,
		IsFlexible:    isFlexible,
		SpecificDays:  specificDays,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
