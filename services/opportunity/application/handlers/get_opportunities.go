package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/errhttp"
	"github.com/ghuser/opportunity-management/pkg/httpx"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/repositories"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GetOpportunitiesHandler handles GET /opportunities.
type GetOpportunitiesHandler struct {
	svc *appsvcs.Services
}

// NewGetOpportunitiesHandler returns a handler backed by the given services.
func NewGetOpportunitiesHandler(svc *appsvcs.Services) *GetOpportunitiesHandler {
	return &GetOpportunitiesHandler{svc: svc}
}

// Execute lists opportunity base records with optional filters.
//
//	@Summary		List opportunities
//	@Description	Returns a paginated list of opportunities. Filterable by status, priority, customer_id and sales_manager_id.
//	@Tags			opportunities
//	@Produce		json
//	@Param			status				query		string	false	"Filter by status"		example(DRAFT)
//	@Param			priority			query		string	false	"Filter by priority"	example(HIGH)
//	@Param			customer_id			query		string	false	"Filter by customer"
//	@Param			sales_manager_id	query		string	false	"Filter by sales manager"
//	@Param			limit				query		int		false	"Page size (max 100)"	default(20)
//	@Param			offset				query		int		false	"Page offset"			default(0)
//	@Success		200	{object}	ListOpportunitiesResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/opportunities [get]
func (h *GetOpportunitiesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := parseQueryOpts(r)

	items, total, err := h.svc.Opportunity.List(r.Context(), filter, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListOpportunitiesResponse{
		Items:  make([]OpportunityResponse, 0, len(items)),
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, o := range items {
		resp.Items = append(resp.Items, toOpportunityResponse(o))
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func parseListFilter(r *http.Request) (repositories.Filter, error) {
	var f repositories.Filter
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return f, err
		}
		f.Status = &status
	}
	if raw := q.Get("priority"); raw != "" {
		priority, err := models.ParsePriority(raw)
		if err != nil {
			return f, err
		}
		f.Priority = &priority
	}
	if raw := q.Get("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, err
		}
		f.CustomerID = &id
	}
	if raw := q.Get("sales_manager_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, err
		}
		f.SalesManagerID = &id
	}
	return f, nil
}

func parseQueryOpts(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: defaultListLimit}
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Limit = min(n, maxListLimit)
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			opts.Offset = n
		}
	}
	return opts
}
