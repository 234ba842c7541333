package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/auth"
	"github.com/ghuser/opportunity-management/pkg/errhttp"
	"github.com/ghuser/opportunity-management/pkg/httpx"
	pkgvalidator "github.com/ghuser/opportunity-management/pkg/validator"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
	domainsvcs "github.com/ghuser/opportunity-management/services/opportunity/domain/services"
)

// ProblemStatementBody is the optional problem-statement step of a creation request.
type ProblemStatementBody struct {
	Content string `json:"content" validate:"required" example:"Legacy on-prem workloads need migration to a managed Kubernetes platform with zero downtime..."`
} // @name ProblemStatementBody

// SkillBody is one entry of the optional skills step.
type SkillBody struct {
	SkillName               string `json:"skill_name"                validate:"required,max=255" example:"Kubernetes"`
	SkillType               string `json:"skill_type"                validate:"required"         example:"TECHNICAL"`
	ImportanceLevel         string `json:"importance_level"          validate:"required"         example:"MUST_HAVE"`
	MinimumProficiencyLevel string `json:"minimum_proficiency_level" validate:"required"         example:"ADVANCED"`
} // @name SkillBody

// TimelineBody is the optional timeline step. Dates use the 2006-01-02 layout.
type TimelineBody struct {
	StartDate    string   `json:"start_date" validate:"required" example:"2026-09-01"`
	EndDate      string   `json:"end_date"   validate:"required" example:"2026-12-01"`
	IsFlexible   bool     `json:"is_flexible"`
	SpecificDays []string `json:"specific_days,omitempty"`
} // @name TimelineBody

// CreateOpportunityRequest is the request body for POST /opportunities.
// The base fields are mandatory; problem_statement, skills and timeline are
// optional enrichment steps attached best-effort after the base is created.
type CreateOpportunityRequest struct {
	Title                    string                `json:"title"                    validate:"required,min=3,max=255" example:"Cloud Migration"`
	CustomerID               uuid.UUID             `json:"customer_id"              validate:"required"`
	CustomerName             string                `json:"customer_name"            validate:"required,max=255" example:"Acme Corp"`
	Description              string                `json:"description"              validate:"required"`
	Priority                 string                `json:"priority"                 validate:"required" example:"HIGH"`
	AnnualRecurringRevenue   string                `json:"annual_recurring_revenue" validate:"required" example:"250000"`
	RegionName               string                `json:"region_name"              validate:"required" example:"EMEA"`
	RequiresPhysicalPresence bool                  `json:"requires_physical_presence"`
	AllowsRemoteWork         bool                  `json:"allows_remote_work"`
	ProblemStatement         *ProblemStatementBody `json:"problem_statement,omitempty"`
	Skills                   []SkillBody           `json:"skills,omitempty"`
	Timeline                 *TimelineBody         `json:"timeline,omitempty"`
} // @name CreateOpportunityRequest

// PostOpportunityHandler handles POST /opportunities requests.
type PostOpportunityHandler struct {
	svc *appsvcs.Services
}

// NewPostOpportunityHandler returns a PostOpportunityHandler backed by the given services.
func NewPostOpportunityHandler(svc *appsvcs.Services) *PostOpportunityHandler {
	return &PostOpportunityHandler{svc: svc}
}

// Execute creates a new opportunity through the multi-step creation saga.
//
//	@Summary		Create opportunity
//	@Description	Creates a new DRAFT opportunity. Optional enrichment steps (problem statement, skills, timeline) are attached best-effort; per-step outcomes are reported in the response.
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOpportunityRequest	true	"Opportunity creation request"
//	@Success		201		{object}	CreateOpportunityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/opportunities [post]
func (h *PostOpportunityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateOpportunityRequest](w, r)
	if !ok {
		return
	}

	in, err := toSagaInput(req, userID)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.svc.Creation.Execute(r.Context(), in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateOpportunityResponse{
		Opportunity: toOpportunityResponse(report.Opportunity),
		Steps:       toStepResults(report),
	})
}

func toSagaInput(req *CreateOpportunityRequest, userID uuid.UUID) (appsvcs.CreateOpportunityInput, error) {
	in := appsvcs.CreateOpportunityInput{
		CustomerID:     req.CustomerID,
		SalesManagerID: userID,
		Basics: domainsvcs.BasicsInput{
			Title:                  req.Title,
			CustomerName:           req.CustomerName,
			Priority:               req.Priority,
			AnnualRecurringRevenue: req.AnnualRecurringRevenue,
			Description:            req.Description,
			RegionName:             req.RegionName,
		},
		RequiresPhysicalPresence: req.RequiresPhysicalPresence,
		AllowsRemoteWork:         req.AllowsRemoteWork,
	}

	if req.ProblemStatement != nil {
		in.ProblemStatement = &domainsvcs.ProblemStatementInput{Content: req.ProblemStatement.Content}
	}
	for _, s := range req.Skills {
		in.Skills = append(in.Skills, domainsvcs.SkillInput{
			SkillName:      s.SkillName,
			SkillType:      s.SkillType,
			Importance:     s.ImportanceLevel,
			MinProficiency: s.MinimumProficiencyLevel,
		})
	}
	if req.Timeline != nil {
		tl, err := toTimelineInput(*req.Timeline)
		if err != nil {
			return in, err
		}
		in.Timeline = &tl
	}
	return in, nil
}

func toTimelineInput(body TimelineBody) (domainsvcs.TimelineInput, error) {
	in := domainsvcs.TimelineInput{IsFlexible: body.IsFlexible}

	var err error
	if in.StartDate, err = time.Parse(dateLayout, body.StartDate); err != nil {
		return in, fmt.Errorf("start_date must use the %s format", dateLayout)
	}
	if in.EndDate, err = time.Parse(dateLayout, body.EndDate); err != nil {
		return in, fmt.Errorf("end_date must use the %s format", dateLayout)
	}
	for _, d := range body.SpecificDays {
		day, err := time.Parse(dateLayout, d)
		if err != nil {
			return in, fmt.Errorf("specific_days entries must use the %s format", dateLayout)
		}
		in.SpecificDays = append(in.SpecificDays, day)
	}
	return in, nil
}
