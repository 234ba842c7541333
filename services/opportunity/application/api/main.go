package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/opportunity-management/pkg/app"
	"github.com/ghuser/opportunity-management/services/opportunity/application/handlers"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
)

// OpportunityRoutes registers opportunity endpoints on the provided chi router.
func OpportunityRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/opportunities", func(r chi.Router) {
			r.Get("/", handlers.NewGetOpportunitiesHandler(svcs).Execute)
			r.Post("/", handlers.NewPostOpportunityHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetOpportunityHandler(svcs).Execute)
				r.Post("/problem-statement", handlers.NewPostProblemStatementHandler(svcs).Execute)
				r.Post("/skill-requirements", handlers.NewPostSkillRequirementHandler(svcs).Execute)
				r.Post("/timeline-requirement", handlers.NewPostTimelineHandler(svcs).Execute)
				r.Post("/submit", handlers.NewPostSubmitHandler(svcs).Execute)
				r.Post("/cancel", handlers.NewPostCancelHandler(svcs).Execute)
				r.Post("/reactivate", handlers.NewPostReactivateHandler(svcs).Execute)
			})
		})
	})
}
