package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/auth"
	"github.com/ghuser/opportunity-management/pkg/errhttp"
	"github.com/ghuser/opportunity-management/pkg/httpx"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
)

// PostSubmitHandler handles POST /opportunities/{id}/submit.
type PostSubmitHandler struct {
	svc *appsvcs.Services
}

// NewPostSubmitHandler returns a handler backed by the given services.
func NewPostSubmitHandler(svc *appsvcs.Services) *PostSubmitHandler {
	return &PostSubmitHandler{svc: svc}
}

// Execute submits a fully specified DRAFT opportunity for matching.
//
//	@Summary		Submit opportunity
//	@Description	Transitions a DRAFT opportunity to SUBMITTED. Requires a problem statement, at least one MUST_HAVE skill and a timeline.
//	@Tags			opportunities
//	@Produce		json
//	@Param			id	path		string	true	"Opportunity ID"
//	@Success		200	{object}	OpportunityResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/opportunities/{id}/submit [post]
func (h *PostSubmitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	o, err := h.svc.Opportunity.Submit(r.Context(), id, userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOpportunityResponse(o))
}
