package services

import (
	"github.com/ghuser/opportunity-management/pkg/app"
	"github.com/ghuser/opportunity-management/pkg/cache"
	"github.com/ghuser/opportunity-management/services/opportunity/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Opportunity *OpportunityService
	Creation    *CreationSaga
}

// New wires all opportunity application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewOpportunityRepository(a.Db, a.EventBus)
	oppCache := cache.NewOpportunityCache(a.Redis)
	return &Services{
		Opportunity: NewOpportunityService(repo, oppCache, a.Logger),
		Creation:    NewCreationSaga(repo, a.Logger),
	}
}
