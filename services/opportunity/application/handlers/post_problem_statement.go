package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/errhttp"
	"github.com/ghuser/opportunity-management/pkg/httpx"
	pkgvalidator "github.com/ghuser/opportunity-management/pkg/validator"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
)

// PostProblemStatementHandler handles POST /opportunities/{id}/problem-statement.
type PostProblemStatementHandler struct {
	svc *appsvcs.Services
}

// NewPostProblemStatementHandler returns a handler backed by the given services.
func NewPostProblemStatementHandler(svc *appsvcs.Services) *PostProblemStatementHandler {
	return &PostProblemStatementHandler{svc: svc}
}

// Execute attaches the problem statement to a DRAFT opportunity.
//
//	@Summary		Attach problem statement
//	@Description	Attaches the 1:1 problem statement. Fails once the opportunity leaves DRAFT or the slot is taken.
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Opportunity ID"
//	@Param			request	body		ProblemStatementBody	true	"Problem statement"
//	@Success		201		{object}	ProblemStatementResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/opportunities/{id}/problem-statement [post]
func (h *PostProblemStatementHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ProblemStatementBody](w, r)
	if !ok {
		return
	}

	ps, err := h.svc.Opportunity.AttachProblemStatement(r.Context(), id, req.Content)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProblemStatementResponse(ps))
}
