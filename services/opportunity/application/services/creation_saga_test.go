package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
	domainsvcs "github.com/ghuser/opportunity-management/services/opportunity/domain/services"
)

// cloudMigrationStatement is 120 characters long.
const cloudMigrationStatement = "The customer runs legacy on-prem workloads that must migrate to a managed cloud platform with minimal downtime and risk."

func fullCreationInput() CreateOpportunityInput {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return CreateOpportunityInput{
		CustomerID:     uuid.New(),
		SalesManagerID: uuid.New(),
		Basics: domainsvcs.BasicsInput{
			Title:                  "Cloud Migration",
			CustomerName:           "Acme Corp",
			Priority:               "HIGH",
			AnnualRecurringRevenue: "750000",
			Description:            "Migrate legacy workloads to a managed platform",
			RegionName:             "EMEA",
		},
		AllowsRemoteWork: true,
		ProblemStatement: &domainsvcs.ProblemStatementInput{
			Content: cloudMigrationStatement,
		},
		Skills: []domainsvcs.SkillInput{
			{SkillName: "Kubernetes", SkillType: "TECHNICAL", Importance: "MUST_HAVE", MinProficiency: "ADVANCED"},
			{SkillName: "Terraform", SkillType: "TECHNICAL", Importance: "PREFERRED", MinProficiency: "INTERMEDIATE"},
			{SkillName: "Stakeholder Management", SkillType: "SOFT", Importance: "NICE_TO_HAVE", MinProficiency: "INTERMEDIATE"},
		},
		Timeline: &domainsvcs.TimelineInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 5, 0),
		},
	}
}

func TestCreationSaga_AllStepsSucceed(t *testing.T) {
	repo := newStubRepository()
	saga := NewCreationSaga(repo, newTestLogger())

	report, err := saga.Execute(context.Background(), fullCreationInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Base.Success {
		t.Fatal("base step should succeed")
	}
	if report.ProblemStatement == nil || !report.ProblemStatement.Success {
		t.Fatalf("problem statement step should succeed: %+v", report.ProblemStatement)
	}
	if len(report.Skills) != 3 {
		t.Fatalf("expected 3 skill results, got %d", len(report.Skills))
	}
	for i, sr := range report.Skills {
		if !sr.Success {
			t.Fatalf("skill %d should succeed: %+v", i, sr)
		}
	}
	if report.Timeline == nil || !report.Timeline.Success {
		t.Fatalf("timeline step should succeed: %+v", report.Timeline)
	}

	o := report.Opportunity
	if o.Status != models.StatusDraft {
		t.Fatalf("expected DRAFT, got %s", o.Status)
	}
	if o.ProblemStatement == nil || o.Timeline == nil || len(o.SkillRequirements) != 3 {
		t.Fatal("aggregate should carry all persisted enrichments")
	}
	if len(o.StatusHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(o.StatusHistory))
	}
	if _, ok := repo.opportunities[o.ID]; !ok {
		t.Fatal("base record should be persisted")
	}
}

func TestCreationSaga_ValidationFailsBeforePersistence(t *testing.T) {
	repo := newStubRepository()
	saga := NewCreationSaga(repo, newTestLogger())

	in := fullCreationInput()
	in.Basics.Title = ""
	in.ProblemStatement.Content = "too short"

	_, err := saga.Execute(context.Background(), in)
	if !errors.Is(err, oppdomain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var verr *oppdomain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(verr.Violations), verr.Violations)
	}
	if len(repo.opportunities) != 0 {
		t.Fatal("nothing should be persisted when validation fails")
	}
}

func TestCreationSaga_BaseFailureAborts(t *testing.T) {
	repo := newStubRepository()
	repo.saveErr = errors.New("connection refused")
	saga := NewCreationSaga(repo, newTestLogger())

	_, err := saga.Execute(context.Background(), fullCreationInput())
	if !errors.Is(err, oppdomain.ErrCreationFailed) {
		t.Fatalf("expected ErrCreationFailed, got %v", err)
	}
	if len(repo.opportunities) != 0 {
		t.Fatal("no opportunity should be recorded when base creation fails")
	}
}

func TestCreationSaga_PartialSkillFailure(t *testing.T) {
	repo := newStubRepository()
	repo.failSkills["terraform"] = errors.New("insert failed")
	saga := NewCreationSaga(repo, newTestLogger())

	report, err := saga.Execute(context.Background(), fullCreationInput())
	if err != nil {
		t.Fatalf("partial enrichment failure must not fail the saga: %v", err)
	}

	if !report.Base.Success {
		t.Fatal("base step should succeed")
	}
	var failed, succeeded int
	for _, sr := range report.Skills {
		if sr.Success {
			succeeded++
		} else {
			failed++
			if sr.Error == "" {
				t.Fatal("failed step should carry an error message")
			}
		}
	}
	if succeeded != 2 || failed != 1 {
		t.Fatalf("expected 2 succeeded / 1 failed, got %d / %d", succeeded, failed)
	}
	if len(report.Opportunity.SkillRequirements) != 2 {
		t.Fatalf("aggregate should only carry persisted skills, got %d", len(report.Opportunity.SkillRequirements))
	}
	if report.Timeline == nil || !report.Timeline.Success {
		t.Fatal("later steps should still run after a skill failure")
	}
}

func TestCreationSaga_TimelineFailureKeepsBase(t *testing.T) {
	repo := newStubRepository()
	repo.timelineErr = errors.New("insert failed")
	saga := NewCreationSaga(repo, newTestLogger())

	report, err := saga.Execute(context.Background(), fullCreationInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Timeline == nil || report.Timeline.Success {
		t.Fatalf("timeline step should be reported as failed: %+v", report.Timeline)
	}
	if report.Opportunity.Timeline != nil {
		t.Fatal("aggregate timeline should be nil when persistence failed")
	}
	if _, ok := repo.opportunities[report.Opportunity.ID]; !ok {
		t.Fatal("base record must survive enrichment failures")
	}
}

func TestCreationSaga_BaseOnlyInput(t *testing.T) {
	repo := newStubRepository()
	saga := NewCreationSaga(repo, newTestLogger())

	in := fullCreationInput()
	in.ProblemStatement = nil
	in.Skills = nil
	in.Timeline = nil

	report, err := saga.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ProblemStatement != nil || report.Skills != nil || report.Timeline != nil {
		t.Fatal("skipped steps must not appear in the report")
	}
	if report.Opportunity.Status != models.StatusDraft {
		t.Fatalf("expected DRAFT, got %s", report.Opportunity.Status)
	}
}
