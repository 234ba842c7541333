package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/opportunity-management/pkg/cache"
	"github.com/ghuser/opportunity-management/pkg/logger"
	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/repositories"
	domainsvcs "github.com/ghuser/opportunity-management/services/opportunity/domain/services"
)

// OpportunityService orchestrates lifecycle transitions, enrichment
// attachment and retrieval of opportunities. Event publishing is handled by
// the repository layer (outbox pattern). Reads are served from Redis cache
// when available; every mutation invalidates the cache entry.
type OpportunityService struct {
	repo  repositories.OpportunityRepository
	cache *pkgcache.OpportunityCache
	log   logger.Logger
}

// NewOpportunityService returns an OpportunityService wired with the given
// repository and cache.
func NewOpportunityService(repo repositories.OpportunityRepository, c *pkgcache.OpportunityCache, log logger.Logger) *OpportunityService {
	return &OpportunityService{repo: repo, cache: c, log: log}
}

// GetByID retrieves the full aggregate using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *OpportunityService) GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "opportunity cache read failed", "opportunity_id", id, "error", err)
		}
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), o)
		}()
	}

	return o, nil
}

// List returns a paginated slice of opportunity base records plus total count.
func (s *OpportunityService) List(ctx context.Context, f repositories.Filter, opts repositories.QueryOpts) ([]*models.Opportunity, int, error) {
	items, total, err := s.repo.Find(ctx, f, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list opportunities: %w", err)
	}
	return items, total, nil
}

// Submit transitions a fully specified DRAFT opportunity to SUBMITTED.
func (s *OpportunityService) Submit(ctx context.Context, id, submittedBy uuid.UUID) (*models.Opportunity, error) {
	return s.mutate(ctx, id, func(o *models.Opportunity) error {
		return o.Submit(submittedBy)
	})
}

// Cancel transitions any non-final opportunity to CANCELLED. The reason is
// checked before any repository call.
func (s *OpportunityService) Cancel(ctx context.Context, id, cancelledBy uuid.UUID, reason string) (*models.Opportunity, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", oppdomain.ErrTransitionRejected)
	}
	return s.mutate(ctx, id, func(o *models.Opportunity) error {
		return o.Cancel(cancelledBy, reason)
	})
}

// Reactivate restores a CANCELLED opportunity to its pre-cancellation status.
func (s *OpportunityService) Reactivate(ctx context.Context, id, reactivatedBy uuid.UUID) (*models.Opportunity, error) {
	return s.mutate(ctx, id, func(o *models.Opportunity) error {
		return o.Reactivate(reactivatedBy)
	})
}

// mutate loads the aggregate, applies a transition and persists the result.
// A rejected transition leaves storage untouched.
func (s *OpportunityService) mutate(ctx context.Context, id uuid.UUID, fn func(*models.Opportunity) error) (*models.Opportunity, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	if err := fn(o); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, o); err != nil {
		return nil, fmt.Errorf("persist status: %w", err)
	}
	s.invalidate(ctx, id)
	return o, nil
}

// AttachProblemStatement validates and attaches the 1:1 problem statement to
// a DRAFT opportunity.
func (s *OpportunityService) AttachProblemStatement(ctx context.Context, opportunityID uuid.UUID, content string) (*models.ProblemStatement, error) {
	if verr := oppdomain.NewValidationError(
		domainsvcs.ValidateProblemStatement(domainsvcs.ProblemStatementInput{Content: content}),
	); verr != nil {
		return nil, verr
	}

	o, err := s.repo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	ps, err := models.NewProblemStatement(o.ID, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", oppdomain.ErrValidation, err)
	}
	if err := o.AttachProblemStatement(ps); err != nil {
		return nil, err
	}
	if err := s.repo.AddProblemStatement(ctx, ps); err != nil {
		return nil, fmt.Errorf("save problem statement: %w", err)
	}
	s.invalidate(ctx, opportunityID)
	return ps, nil
}

// AttachSkillRequirement validates and attaches one skill requirement to a
// DRAFT opportunity.
func (s *OpportunityService) AttachSkillRequirement(ctx context.Context, opportunityID uuid.UUID, in domainsvcs.SkillInput) (*models.SkillRequirement, error) {
	if verr := oppdomain.NewValidationError(validateSingleSkill(in)); verr != nil {
		return nil, verr
	}

	o, err := s.repo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	sr, err := models.NewSkillRequirement(o.ID, in.SkillName,
		models.SkillType(in.SkillType), models.Importance(in.Importance),
		models.Proficiency(in.MinProficiency))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", oppdomain.ErrValidation, err)
	}
	if err := o.AttachSkillRequirement(sr); err != nil {
		return nil, err
	}
	if err := s.repo.AddSkillRequirement(ctx, sr); err != nil {
		return nil, fmt.Errorf("save skill requirement: %w", err)
	}
	s.invalidate(ctx, opportunityID)
	return sr, nil
}

// AttachTimeline validates and attaches the 1:1 timeline requirement to a
// DRAFT opportunity.
func (s *OpportunityService) AttachTimeline(ctx context.Context, opportunityID uuid.UUID, in domainsvcs.TimelineInput) (*models.TimelineRequirement, error) {
	if verr := oppdomain.NewValidationError(domainsvcs.ValidateTimeline(in)); verr != nil {
		return nil, verr
	}

	o, err := s.repo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	tl, err := models.NewTimelineRequirement(o.ID, in.StartDate, in.EndDate, in.IsFlexible, in.SpecificDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", oppdomain.ErrValidation, err)
	}
	if err := o.AttachTimeline(tl); err != nil {
		return nil, err
	}
	if err := s.repo.AddTimeline(ctx, tl); err != nil {
		return nil, fmt.Errorf("save timeline: %w", err)
	}
	s.invalidate(ctx, opportunityID)
	return tl, nil
}

// validateSingleSkill reuses the skills-step validator for a one-entry list.
// The MUST_HAVE floor does not apply to incremental attachment; it is
// enforced at submission time instead.
func validateSingleSkill(in domainsvcs.SkillInput) []oppdomain.Violation {
	all := domainsvcs.ValidateSkills(domainsvcs.SkillsInput{Skills: []domainsvcs.SkillInput{in}})
	var vs []oppdomain.Violation
	for _, v := range all {
		if v.Field == "skills" {
			continue
		}
		vs = append(vs, v)
	}
	return vs
}

func (s *OpportunityService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.WithoutCancel(ctx), id); err != nil {
		s.log.WarnContext(ctx, "opportunity cache invalidation failed", "opportunity_id", id, "error", err)
	}
}
