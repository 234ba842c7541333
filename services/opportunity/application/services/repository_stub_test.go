package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/opportunity-management/pkg/config"
	"github.com/ghuser/opportunity-management/pkg/logger"
	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/repositories"
)

// stubRepository is an in-memory OpportunityRepository with failure knobs
// for exercising the saga's partial-failure semantics.
type stubRepository struct {
	opportunities map[uuid.UUID]*models.Opportunity

	saveErr     error
	timelineErr error
	failSkills  map[string]error // skill name (lowercased) → error

	getCalls          int
	updateStatusCalls int
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		opportunities: make(map[uuid.UUID]*models.Opportunity),
		failSkills:    make(map[string]error),
	}
}

func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func (r *stubRepository) Save(_ context.Context, o *models.Opportunity) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.opportunities[o.ID] = o
	return nil
}

func (r *stubRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Opportunity, error) {
	r.getCalls++
	o, ok := r.opportunities[id]
	if !ok {
		return nil, oppdomain.ErrOpportunityNotFound
	}
	return o, nil
}

func (r *stubRepository) Find(_ context.Context, _ repositories.Filter, _ repositories.QueryOpts) ([]*models.Opportunity, int, error) {
	out := make([]*models.Opportunity, 0, len(r.opportunities))
	for _, o := range r.opportunities {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (r *stubRepository) UpdateStatus(_ context.Context, o *models.Opportunity) error {
	r.updateStatusCalls++
	r.opportunities[o.ID] = o
	return nil
}

func (r *stubRepository) AddProblemStatement(_ context.Context, ps *models.ProblemStatement) error {
	if _, ok := r.opportunities[ps.OpportunityID]; !ok {
		return oppdomain.ErrOpportunityNotFound
	}
	return nil
}

func (r *stubRepository) AddSkillRequirement(_ context.Context, sr *models.SkillRequirement) error {
	if err, ok := r.failSkills[strings.ToLower(sr.SkillName)]; ok {
		return err
	}
	if _, ok := r.opportunities[sr.OpportunityID]; !ok {
		return oppdomain.ErrOpportunityNotFound
	}
	return nil
}

func (r *stubRepository) AddTimeline(_ context.Context, tl *models.TimelineRequirement) error {
	if r.timelineErr != nil {
		return r.timelineErr
	}
	if _, ok := r.opportunities[tl.OpportunityID]; !ok {
		return oppdomain.ErrOpportunityNotFound
	}
	return nil
}

func (r *stubRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.opportunities[id]
	return ok, nil
}
