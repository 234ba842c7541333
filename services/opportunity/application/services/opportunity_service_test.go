package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
	domainsvcs "github.com/ghuser/opportunity-management/services/opportunity/domain/services"
)

// newServiceWithOpportunity seeds the stub repository through the saga and
// returns the service plus the created aggregate.
func newServiceWithOpportunity(t *testing.T, in CreateOpportunityInput) (*OpportunityService, *stubRepository, *models.Opportunity) {
	t.Helper()
	repo := newStubRepository()
	log := newTestLogger()
	saga := NewCreationSaga(repo, log)

	report, err := saga.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("seed opportunity: %v", err)
	}
	return NewOpportunityService(repo, nil, log), repo, report.Opportunity
}

func TestOpportunityService_CloudMigrationScenario(t *testing.T) {
	// A sales manager creates "Cloud Migration" with all enrichments in one
	// request, then submits it: DRAFT with one history entry, then SUBMITTED
	// with two.
	svc, repo, o := newServiceWithOpportunity(t, fullCreationInput())

	if o.Status != models.StatusDraft {
		t.Fatalf("expected DRAFT after creation, got %s", o.Status)
	}
	if len(o.StatusHistory) != 1 {
		t.Fatalf("expected 1 history entry after creation, got %d", len(o.StatusHistory))
	}

	submitter := uuid.New()
	submitted, err := svc.Submit(context.Background(), o.ID, submitter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if submitted.Status != models.StatusSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", submitted.Status)
	}
	if len(submitted.StatusHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(submitted.StatusHistory))
	}
	if repo.updateStatusCalls != 1 {
		t.Fatalf("expected 1 UpdateStatus call, got %d", repo.updateStatusCalls)
	}
}

func TestOpportunityService_SubmitIncompleteDraft(t *testing.T) {
	in := fullCreationInput()
	in.Timeline = nil
	svc, repo, o := newServiceWithOpportunity(t, in)

	_, err := svc.Submit(context.Background(), o.ID, uuid.New())
	if !errors.Is(err, oppdomain.ErrTransitionRejected) {
		t.Fatalf("expected ErrTransitionRejected, got %v", err)
	}
	if repo.updateStatusCalls != 0 {
		t.Fatal("rejected submit must not persist anything")
	}
}

func TestOpportunityService_CancelBlankReasonShortCircuits(t *testing.T) {
	svc, repo, o := newServiceWithOpportunity(t, fullCreationInput())

	_, err := svc.Cancel(context.Background(), o.ID, uuid.New(), "   ")
	if !errors.Is(err, oppdomain.ErrTransitionRejected) {
		t.Fatalf("expected ErrTransitionRejected, got %v", err)
	}
	if repo.getCalls != 0 {
		t.Fatal("blank reason must be rejected before any repository call")
	}
}

func TestOpportunityService_CancelAndReactivate(t *testing.T) {
	svc, _, o := newServiceWithOpportunity(t, fullCreationInput())
	actor := uuid.New()

	if _, err := svc.Submit(context.Background(), o.ID, actor); err != nil {
		t.Fatalf("submit: %v", err)
	}
	cancelled, err := svc.Cancel(context.Background(), o.ID, actor, "budget freeze")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", cancelled.Status)
	}
	if cancelled.ReactivationDeadline == nil {
		t.Fatal("expected reactivation deadline to be set")
	}

	reactivated, err := svc.Reactivate(context.Background(), o.ID, actor)
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if reactivated.Status != models.StatusSubmitted {
		t.Fatalf("expected SUBMITTED after reactivation, got %s", reactivated.Status)
	}
}

func TestOpportunityService_GetByIDNotFound(t *testing.T) {
	svc := NewOpportunityService(newStubRepository(), nil, newTestLogger())

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, oppdomain.ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestOpportunityService_AttachProblemStatement(t *testing.T) {
	in := fullCreationInput()
	in.ProblemStatement = nil
	svc, _, o := newServiceWithOpportunity(t, in)

	t.Run("short content rejected with violations", func(t *testing.T) {
		_, err := svc.AttachProblemStatement(context.Background(), o.ID, "too short")
		var verr *oppdomain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
	})

	t.Run("valid content attaches", func(t *testing.T) {
		content := strings.Repeat("x", models.MinProblemStatementLength)
		ps, err := svc.AttachProblemStatement(context.Background(), o.ID, content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ps.OpportunityID != o.ID {
			t.Fatalf("expected OpportunityID %v, got %v", o.ID, ps.OpportunityID)
		}
	})

	t.Run("second attach hits the exclusive slot", func(t *testing.T) {
		content := strings.Repeat("y", models.MinProblemStatementLength)
		_, err := svc.AttachProblemStatement(context.Background(), o.ID, content)
		if !errors.Is(err, oppdomain.ErrProblemStatementExists) {
			t.Fatalf("expected ErrProblemStatementExists, got %v", err)
		}
	})
}

func TestOpportunityService_AttachSkillRequirement(t *testing.T) {
	in := fullCreationInput()
	in.Skills = nil
	svc, _, o := newServiceWithOpportunity(t, in)

	t.Run("single non-mandatory skill attaches", func(t *testing.T) {
		sr, err := svc.AttachSkillRequirement(context.Background(), o.ID, domainsvcs.SkillInput{
			SkillName:      "Terraform",
			SkillType:      "TECHNICAL",
			Importance:     "PREFERRED",
			MinProficiency: "INTERMEDIATE",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sr.SkillName != "Terraform" {
			t.Fatalf("unexpected skill: %+v", sr)
		}
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		_, err := svc.AttachSkillRequirement(context.Background(), o.ID, domainsvcs.SkillInput{
			SkillName:      "terraform",
			SkillType:      "TECHNICAL",
			Importance:     "MUST_HAVE",
			MinProficiency: "ADVANCED",
		})
		if !errors.Is(err, oppdomain.ErrDuplicateSkill) {
			t.Fatalf("expected ErrDuplicateSkill, got %v", err)
		}
	})

	t.Run("invalid enum rejected with violations", func(t *testing.T) {
		_, err := svc.AttachSkillRequirement(context.Background(), o.ID, domainsvcs.SkillInput{
			SkillName:      "Go",
			SkillType:      "MAGIC",
			Importance:     "MUST_HAVE",
			MinProficiency: "EXPERT",
		})
		if !errors.Is(err, oppdomain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestOpportunityService_AttachTimeline(t *testing.T) {
	in := fullCreationInput()
	in.Timeline = nil
	svc, _, o := newServiceWithOpportunity(t, in)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := svc.AttachTimeline(context.Background(), o.ID, domainsvcs.TimelineInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 0, -1),
		})
		if !errors.Is(err, oppdomain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("valid timeline attaches once", func(t *testing.T) {
		tl, err := svc.AttachTimeline(context.Background(), o.ID, domainsvcs.TimelineInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 3, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tl.OpportunityID != o.ID {
			t.Fatalf("expected OpportunityID %v, got %v", o.ID, tl.OpportunityID)
		}

		_, err = svc.AttachTimeline(context.Background(), o.ID, domainsvcs.TimelineInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 1, 0),
		})
		if !errors.Is(err, oppdomain.ErrTimelineExists) {
			t.Fatalf("expected ErrTimelineExists, got %v", err)
		}
	})

	t.Run("attachment blocked once submitted", func(t *testing.T) {
		if _, err := svc.Submit(context.Background(), o.ID, uuid.New()); err != nil {
			t.Fatalf("submit: %v", err)
		}
		_, err := svc.AttachSkillRequirement(context.Background(), o.ID, domainsvcs.SkillInput{
			SkillName:      "Ansible",
			SkillType:      "TECHNICAL",
			Importance:     "PREFERRED",
			MinProficiency: "BEGINNER",
		})
		if !errors.Is(err, oppdomain.ErrNotModifiable) {
			t.Fatalf("expected ErrNotModifiable, got %v", err)
		}
	})
}
