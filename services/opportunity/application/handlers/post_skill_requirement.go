package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/errhttp"
	"github.com/ghuser/opportunity-management/pkg/httpx"
	pkgvalidator "github.com/ghuser/opportunity-management/pkg/validator"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
	domainsvcs "github.com/ghuser/opportunity-management/services/opportunity/domain/services"
)

// PostSkillRequirementHandler handles POST /opportunities/{id}/skill-requirements.
type PostSkillRequirementHandler struct {
	svc *appsvcs.Services
}

// NewPostSkillRequirementHandler returns a handler backed by the given services.
func NewPostSkillRequirementHandler(svc *appsvcs.Services) *PostSkillRequirementHandler {
	return &PostSkillRequirementHandler{svc: svc}
}

// Execute attaches one skill requirement to a DRAFT opportunity.
//
//	@Summary		Attach skill requirement
//	@Description	Attaches a skill requirement. Duplicate (name, type) pairs are rejected.
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Opportunity ID"
//	@Param			request	body		SkillBody	true	"Skill requirement"
//	@Success		201		{object}	SkillRequirementResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/opportunities/{id}/skill-requirements [post]
func (h *PostSkillRequirementHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SkillBody](w, r)
	if !ok {
		return
	}

	sr, err := h.svc.Opportunity.AttachSkillRequirement(r.Context(), id, domainsvcs.SkillInput{
		SkillName:      req.SkillName,
		SkillType:      req.SkillType,
		Importance:     req.ImportanceLevel,
		MinProficiency: req.MinimumProficiencyLevel,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toSkillRequirementResponse(sr))
}
