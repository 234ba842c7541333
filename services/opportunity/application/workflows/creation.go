// Package workflows contains Temporal workflows for the opportunity bounded
// context. The creation workflow is the asynchronous entry point for bulk
// imports and integrations; the HTTP API runs the same saga synchronously.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
)

// TaskQueue is the Temporal task queue for opportunity workflows.
const TaskQueue = "opportunity-management"

// CreationActivities hosts the activity implementations for the creation
// workflow. Activities run in the worker process with full infrastructure
// access.
type CreationActivities struct {
	svcs *appsvcs.Services
}

// NewCreationActivities returns activities backed by the given services.
func NewCreationActivities(svcs *appsvcs.Services) *CreationActivities {
	return &CreationActivities{svcs: svcs}
}

// ExecuteCreation runs the creation saga as a single activity. The saga
// already treats enrichment failures as best-effort, so retrying the whole
// activity is only safe before the base record exists; the retry policy below
// therefore allows a single attempt and surfaces failures to the workflow.
func (a *CreationActivities) ExecuteCreation(ctx context.Context, in appsvcs.CreateOpportunityInput) (*appsvcs.SagaReport, error) {
	return a.svcs.Creation.Execute(ctx, in)
}

// CreateOpportunityWorkflow durably executes one opportunity creation.
// Validation failures and base-creation failures fail the workflow; partial
// enrichment failures are readable from the returned report.
func CreateOpportunityWorkflow(ctx workflow.Context, in appsvcs.CreateOpportunityInput) (*appsvcs.SagaReport, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1, // the saga is not idempotent past base creation
		},
	})

	var a *CreationActivities
	var report *appsvcs.SagaReport
	if err := workflow.ExecuteActivity(ctx, a.ExecuteCreation, in).Get(ctx, &report); err != nil {
		return nil, err
	}
	return report, nil
}
