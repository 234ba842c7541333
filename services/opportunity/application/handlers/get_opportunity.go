package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/errhttp"
	"github.com/ghuser/opportunity-management/pkg/httpx"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
)

// GetOpportunityHandler handles GET /opportunities/{id}.
type GetOpportunityHandler struct {
	svc *appsvcs.Services
}

// NewGetOpportunityHandler returns a handler backed by the given services.
func NewGetOpportunityHandler(svc *appsvcs.Services) *GetOpportunityHandler {
	return &GetOpportunityHandler{svc: svc}
}

// Execute returns the full opportunity aggregate.
//
//	@Summary		Get opportunity
//	@Description	Returns the opportunity with its problem statement, skill requirements, timeline and status history.
//	@Tags			opportunities
//	@Produce		json
//	@Param			id	path		string	true	"Opportunity ID"
//	@Success		200	{object}	OpportunityResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/opportunities/{id} [get]
func (h *GetOpportunityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	o, err := h.svc.Opportunity.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOpportunityResponse(o))
}
