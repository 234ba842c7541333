// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/opportunity-management/pkg/httpx"
	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Validation errors additionally carry their per-field violations in the body.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	var verr *oppdomain.ValidationError
	if errors.As(err, &verr) {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "validation failed",
			"violations": verr.Violations,
		})
		return
	}
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, oppdomain.ErrOpportunityNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, oppdomain.ErrTransitionRejected):
		return http.StatusConflict // 409
	case errors.Is(err, oppdomain.ErrNotModifiable):
		return http.StatusConflict // 409
	case errors.Is(err, oppdomain.ErrProblemStatementExists):
		return http.StatusConflict // 409
	case errors.Is(err, oppdomain.ErrTimelineExists):
		return http.StatusConflict // 409
	case errors.Is(err, oppdomain.ErrDuplicateSkill):
		return http.StatusConflict // 409
	case errors.Is(err, oppdomain.ErrValidation):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, oppdomain.ErrCreationFailed):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
