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

// PostTimelineHandler handles POST /opportunities/{id}/timeline-requirement.
type PostTimelineHandler struct {
	svc *appsvcs.Services
}

// NewPostTimelineHandler returns a handler backed by the given services.
func NewPostTimelineHandler(svc *appsvcs.Services) *PostTimelineHandler {
	return &PostTimelineHandler{svc: svc}
}

// Execute attaches the timeline requirement to a DRAFT opportunity.
//
//	@Summary		Attach timeline
//	@Description	Attaches the 1:1 timeline requirement. Fails once the opportunity leaves DRAFT or the slot is taken.
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Opportunity ID"
//	@Param			request	body		TimelineBody	true	"Timeline requirement"
//	@Success		201		{object}	TimelineResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/opportunities/{id}/timeline-requirement [post]
func (h *PostTimelineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid opportunity id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[TimelineBody](w, r)
	if !ok {
		return
	}

	in, err := toTimelineInput(*req)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	tl, err := h.svc.Opportunity.AttachTimeline(r.Context(), id, in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toTimelineResponse(tl))
}
