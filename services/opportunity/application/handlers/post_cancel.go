package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/auth"
	"github.com/ghuser/opportunity-management/pkg/errhttp"
	"github.com/ghuser/opportunity-management/pkg/httpx"
	pkgvalidator "github.com/ghuser/opportunity-management/pkg/validator"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
)

// CancelOpportunityRequest is the request body for POST /opportunities/{id}/cancel.
type CancelOpportunityRequest struct {
	Reason string `json:"reason" validate:"required" example:"Customer postponed the project"`
} // @name CancelOpportunityRequest

// PostCancelHandler handles POST /opportunities/{id}/cancel.
type PostCancelHandler struct {
	svc *appsvcs.Services
}

// NewPostCancelHandler returns a handler backed by the given services.
func NewPostCancelHandler(svc *appsvcs.Services) *PostCancelHandler {
	return &PostCancelHandler{svc: svc}
}

// Execute cancels any non-final opportunity with a mandatory reason.
//
//	@Summary		Cancel opportunity
//	@Description	Transitions the opportunity to CANCELLED. The reason is mandatory and recorded in the status history.
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Opportunity ID"
//	@Param			request	body		CancelOpportunityRequest	true	"Cancellation reason"
//	@Success		200		{object}	OpportunityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/opportunities/{id}/cancel [post]
func (h *PostCancelHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[CancelOpportunityRequest](w, r)
	if !ok {
		return
	}

	o, err := h.svc.Opportunity.Cancel(r.Context(), id, userID, req.Reason)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOpportunityResponse(o))
}
