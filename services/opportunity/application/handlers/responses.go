package handlers

import (
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"opportunity not found"`
} // @name ErrorResponse

// ProblemStatementResponse is the JSON shape of a problem statement.
type ProblemStatementResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
} // @name ProblemStatementResponse

// SkillRequirementResponse is the JSON shape of a skill requirement.
type SkillRequirementResponse struct {
	ID                      uuid.UUID `json:"id"`
	SkillName               string    `json:"skill_name"               example:"Kubernetes"`
	SkillType               string    `json:"skill_type"               example:"TECHNICAL"`
	ImportanceLevel         string    `json:"importance_level"         example:"MUST_HAVE"`
	MinimumProficiencyLevel string    `json:"minimum_proficiency_level" example:"ADVANCED"`
	CreatedAt               time.Time `json:"created_at"`
} // @name SkillRequirementResponse

// TimelineResponse is the JSON shape of a timeline requirement.
type TimelineResponse struct {
	ID           uuid.UUID `json:"id"`
	StartDate    string    `json:"start_date" example:"2026-09-01"`
	EndDate      string    `json:"end_date"   example:"2026-12-01"`
	IsFlexible   bool      `json:"is_flexible"`
	SpecificDays []string  `json:"specific_days,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
} // @name TimelineResponse

// StatusChangeResponse is one entry of the status history.
type StatusChangeResponse struct {
	Status    string    `json:"status"     example:"SUBMITTED"`
	Reason    string    `json:"reason,omitempty"`
	ChangedBy uuid.UUID `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
} // @name StatusChangeResponse

// OpportunityResponse is the JSON shape of a full opportunity aggregate.
// Sub-resources and history are omitted in list responses.
type OpportunityResponse struct {
	ID                       uuid.UUID                  `json:"id"`
	Title                    string                     `json:"title"          example:"Cloud Migration"`
	CustomerID               uuid.UUID                  `json:"customer_id"`
	CustomerName             string                     `json:"customer_name"  example:"Acme Corp"`
	SalesManagerID           uuid.UUID                  `json:"sales_manager_id"`
	Description              string                     `json:"description"`
	Priority                 string                     `json:"priority"       example:"HIGH"`
	AnnualRecurringRevenue   string                     `json:"annual_recurring_revenue" example:"250000"`
	RegionName               string                     `json:"region_name"    example:"EMEA"`
	RequiresPhysicalPresence bool                       `json:"requires_physical_presence"`
	AllowsRemoteWork         bool                       `json:"allows_remote_work"`
	Status                   string                     `json:"status"         example:"DRAFT"`
	ProblemStatement         *ProblemStatementResponse  `json:"problem_statement,omitempty"`
	SkillRequirements        []SkillRequirementResponse `json:"skill_requirements,omitempty"`
	Timeline                 *TimelineResponse          `json:"timeline,omitempty"`
	StatusHistory            []StatusChangeResponse     `json:"status_history,omitempty"`
	CancelledAt              *time.Time                 `json:"cancelled_at,omitempty"`
	CancellationReason       string                     `json:"cancellation_reason,omitempty"`
	ReactivationDeadline     *time.Time                 `json:"reactivation_deadline,omitempty"`
	CreatedAt                time.Time                  `json:"created_at"`
	UpdatedAt                time.Time                  `json:"updated_at"`
} // @name OpportunityResponse

// StepResultResponse mirrors one creation step outcome.
type StepResultResponse struct {
	Step    string `json:"step"    example:"problem_statement"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
} // @name StepResultResponse

// CreateOpportunityResponse is returned on successful opportunity creation.
// Enrichment steps may have failed individually; check Steps.
type CreateOpportunityResponse struct {
	Opportunity OpportunityResponse  `json:"opportunity"`
	Steps       []StepResultResponse `json:"steps"`
} // @name CreateOpportunityResponse

// ListOpportunitiesResponse is the paginated list payload.
type ListOpportunitiesResponse struct {
	Items  []OpportunityResponse `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
} // @name ListOpportunitiesResponse

const dateLayout = "2006-01-02"

func toOpportunityResponse(o *models.Opportunity) OpportunityResponse {
	resp := OpportunityResponse{
		ID:                       o.ID,
		Title:                    o.Title,
		CustomerID:               o.CustomerID,
		CustomerName:             o.CustomerName,
		SalesManagerID:           o.SalesManagerID,
		Description:              o.Description,
		Priority:                 o.Priority.String(),
		AnnualRecurringRevenue:   o.AnnualRecurringRevenue.String(),
		RegionName:               o.Geographic.RegionName,
		RequiresPhysicalPresence: o.Geographic.RequiresPhysicalPresence,
		AllowsRemoteWork:         o.Geographic.AllowsRemoteWork,
		Status:                   o.Status.String(),
		CancelledAt:              o.CancelledAt,
		CancellationReason:       o.CancellationReason,
		ReactivationDeadline:     o.ReactivationDeadline,
		CreatedAt:                o.CreatedAt,
		UpdatedAt:                o.UpdatedAt,
	}
	if o.ProblemStatement != nil {
		ps := toProblemStatementResponse(o.ProblemStatement)
		resp.ProblemStatement = &ps
	}
	for i := range o.SkillRequirements {
		resp.SkillRequirements = append(resp.SkillRequirements, toSkillRequirementResponse(&o.SkillRequirements[i]))
	}
	if o.Timeline != nil {
		tl := toTimelineResponse(o.Timeline)
		resp.Timeline = &tl
	}
	for _, h := range o.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, StatusChangeResponse{
			Status:    h.Status.String(),
			Reason:    h.Reason,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		})
	}
	return resp
}

func toProblemStatementResponse(ps *models.ProblemStatement) ProblemStatementResponse {
	return ProblemStatementResponse{
		ID:        ps.ID,
		Content:   ps.Content,
		CreatedAt: ps.CreatedAt,
	}
}

func toSkillRequirementResponse(sr *models.SkillRequirement) SkillRequirementResponse {
	return SkillRequirementResponse{
		ID:                      sr.ID,
		SkillName:               sr.SkillName,
		SkillType:               sr.SkillType.String(),
		ImportanceLevel:         sr.Importance.String(),
		MinimumProficiencyLevel: sr.MinProficiency.String(),
		CreatedAt:               sr.CreatedAt,
	}
}

func toTimelineResponse(tl *models.TimelineRequirement) TimelineResponse {
	resp := TimelineResponse{
		ID:         tl.ID,
		StartDate:  tl.StartDate.Format(dateLayout),
		EndDate:    tl.EndDate.Format(dateLayout),
		IsFlexible: tl.IsFlexible,
		CreatedAt:  tl.CreatedAt,
	}
	for _, d := range tl.SpecificDays {
		resp.SpecificDays = append(resp.SpecificDays, d.Format(dateLayout))
	}
	return resp
}

func toStepResults(report *appsvcs.SagaReport) []StepResultResponse {
	steps := []StepResultResponse{toStepResultResponse(report.Base)}
	if report.ProblemStatement != nil {
		steps = append(steps, toStepResultResponse(*report.ProblemStatement))
	}
	for _, sr := range report.Skills {
		steps = append(steps, toStepResultResponse(sr))
	}
	if report.Timeline != nil {
		steps = append(steps, toStepResultResponse(*report.Timeline))
	}
	return steps
}

func toStepResultResponse(r appsvcs.StepResult) StepResultResponse {
	return StepResultResponse{Step: r.Step, Success: r.Success, Error: r.Error}
}
