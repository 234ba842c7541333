package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/opportunity-management/pkg/logger"
	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/repositories"
	domainsvcs "github.com/ghuser/opportunity-management/services/opportunity/domain/services"
)

// CreateOpportunityInput carries every step of the creation wizard in one
// request. Basics is mandatory; the enrichment steps are optional and may be
// attached later through their own endpoints.
type CreateOpportunityInput struct {
	CustomerID               uuid.UUID
	SalesManagerID           uuid.UUID
	Basics                   domainsvcs.BasicsInput
	RequiresPhysicalPresence bool
	AllowsRemoteWork         bool
	ProblemStatement         *domainsvcs.ProblemStatementInput
	Skills                   []domainsvcs.SkillInput
	Timeline                 *domainsvcs.TimelineInput
}

// StepResult records the outcome of one saga step.
type StepResult struct {
	Step    string `json:"step"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SagaReport is the full outcome of a creation run. Base is always present;
// the enrichment results are nil when the corresponding step was not part of
// the input. Opportunity reflects only what was actually persisted.
type SagaReport struct {
	Opportunity      *models.Opportunity
	Base             StepResult
	ProblemStatement *StepResult
	Skills           []StepResult
	Timeline         *StepResult
}

// CreationSaga runs the multi-step opportunity creation: structural
// validation of every provided step up front, then the mandatory base
// creation, then best-effort enrichment attachment. A failed enrichment step
// is recorded and logged but never rolls back the base record or the other
// enrichments.
type CreationSaga struct {
	repo repositories.OpportunityRepository
	log  logger.Logger
}

// NewCreationSaga returns a CreationSaga wired with the given repository.
func NewCreationSaga(repo repositories.OpportunityRepository, log logger.Logger) *CreationSaga {
	return &CreationSaga{repo: repo, log: log}
}

// Execute runs the saga. It returns a ValidationError (no persistence
// attempted) when any provided step is structurally invalid, and an error
// wrapping ErrCreationFailed when the mandatory base creation fails. Any
// other outcome is a success whose partial failures are readable from the
// report.
func (s *CreationSaga) Execute(ctx context.Context, in CreateOpportunityInput) (*SagaReport, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	o, err := s.createBase(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", oppdomain.ErrCreationFailed, err)
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %w", oppdomain.ErrCreationFailed, err)
	}

	report := &SagaReport{
		Opportunity: o,
		Base:        StepResult{Step: domainsvcs.StepBasics, Success: true},
	}

	if in.ProblemStatement != nil {
		res := s.attachProblemStatement(ctx, o, in.ProblemStatement.Content)
		report.ProblemStatement = &res
	}
	for _, skill := range in.Skills {
		report.Skills = append(report.Skills, s.attachSkill(ctx, o, skill))
	}
	if in.Timeline != nil {
		res := s.attachTimeline(ctx, o, *in.Timeline)
		report.Timeline = &res
	}

	return report, nil
}

// validate runs the structural validators over every provided step and
// collects all violations before anything is persisted.
func (s *CreationSaga) validate(in CreateOpportunityInput) error {
	var vs []oppdomain.Violation
	vs = append(vs, domainsvcs.ValidateBasics(in.Basics)...)
	if in.ProblemStatement != nil {
		vs = append(vs, domainsvcs.ValidateProblemStatement(*in.ProblemStatement)...)
	}
	if len(in.Skills) > 0 {
		vs = append(vs, domainsvcs.ValidateSkills(domainsvcs.SkillsInput{Skills: in.Skills})...)
	}
	if in.Timeline != nil {
		vs = append(vs, domainsvcs.ValidateTimeline(*in.Timeline)...)
	}
	return oppdomain.NewValidationError(vs)
}

func (s *CreationSaga) createBase(in CreateOpportunityInput) (*models.Opportunity, error) {
	priority, err := models.ParsePriority(in.Basics.Priority)
	if err != nil {
		return nil, err
	}
	arr, err := decimal.NewFromString(in.Basics.AnnualRecurringRevenue)
	if err != nil {
		return nil, err
	}
	return models.NewOpportunity(
		in.Basics.Title,
		in.CustomerID,
		in.Basics.CustomerName,
		in.SalesManagerID,
		in.Basics.Description,
		priority,
		arr,
		models.Geographic{
			RegionName:               in.Basics.RegionName,
			RequiresPhysicalPresence: in.RequiresPhysicalPresence,
			AllowsRemoteWork:         in.AllowsRemoteWork,
		},
	)
}

func (s *CreationSaga) attachProblemStatement(ctx context.Context, o *models.Opportunity, content string) StepResult {
	ps, err := models.NewProblemStatement(o.ID, content)
	if err == nil {
		if err = o.AttachProblemStatement(ps); err == nil {
			if err = s.repo.AddProblemStatement(ctx, ps); err != nil {
				o.ProblemStatement = nil // keep the aggregate consistent with storage
			}
		}
	}
	return s.stepResult(ctx, o.ID, domainsvcs.StepProblemStatement, err)
}

func (s *CreationSaga) attachSkill(ctx context.Context, o *models.Opportunity, in domainsvcs.SkillInput) StepResult {
	sr, err := models.NewSkillRequirement(o.ID, in.SkillName,
		models.SkillType(in.SkillType), models.Importance(in.Importance),
		models.Proficiency(in.MinProficiency))
	if err == nil {
		if err = o.AttachSkillRequirement(sr); err == nil {
			if err = s.repo.AddSkillRequirement(ctx, sr); err != nil {
				o.SkillRequirements = o.SkillRequirements[:len(o.SkillRequirements)-1]
			}
		}
	}
	return s.stepResult(ctx, o.ID, domainsvcs.StepSkills, err)
}

func (s *CreationSaga) attachTimeline(ctx context.Context, o *models.Opportunity, in domainsvcs.TimelineInput) StepResult {
	tl, err := models.NewTimelineRequirement(o.ID, in.StartDate, in.EndDate, in.IsFlexible, in.SpecificDays)
	if err == nil {
		if err = o.AttachTimeline(tl); err == nil {
			if err = s.repo.AddTimeline(ctx, tl); err != nil {
				o.Timeline = nil
			}
		}
	}
	return s.stepResult(ctx, o.ID, domainsvcs.StepTimeline, err)
}

func (s *CreationSaga) stepResult(ctx context.Context, opportunityID uuid.UUID, step string, err error) StepResult {
	if err != nil {
		s.log.WarnContext(ctx, "creation step failed",
			"opportunity_id", opportunityID, "step", step, "error", err)
		return StepResult{Step: step, Error: err.Error()}
	}
	return StepResult{Step: step, Success: true}
}
