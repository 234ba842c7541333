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

// PostReactivateHandler handles POST /opportunities/{id}/reactivate.
type PostReactivateHandler struct {
	svc *appsvcs.Services
}

// NewPostReactivateHandler returns a handler backed by the given services.
func NewPostReactivateHandler(svc *appsvcs.Services) *PostReactivateHandler {
	return &PostReactivateHandler{svc: svc}
}

// Execute restores a CANCELLED opportunity to its pre-cancellation status.
//
//	@Summary		Reactivate opportunity
//	@Description	Restores a CANCELLED opportunity to the status it held before cancellation. Rejected once the reactivation window has passed.
//	@Tags			opportunities
//	@Produce		json
//	@Param			id	path		string	true	"Opportunity ID"
//	@Success		200	{object}	OpportunityResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/opportunities/{id}/reactivate [post]
func (h *PostReactivateHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	o, err := h.svc.Opportunity.Reactivate(r.Context(), id, userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOpportunityResponse(o))
}
