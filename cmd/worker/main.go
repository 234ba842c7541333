package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/opportunity-management/pkg/app"
	"github.com/ghuser/opportunity-management/pkg/cache"
	"github.com/ghuser/opportunity-management/pkg/config"
	"github.com/ghuser/opportunity-management/pkg/database"
	"github.com/ghuser/opportunity-management/pkg/events"
	"github.com/ghuser/opportunity-management/pkg/logger"
	"github.com/ghuser/opportunity-management/pkg/telemetry"
	"github.com/ghuser/opportunity-management/pkg/workflows"
	appsvcs "github.com/ghuser/opportunity-management/services/opportunity/application/services"
	oppworkflows "github.com/ghuser/opportunity-management/services/opportunity/application/workflows"
	oppevents "github.com/ghuser/opportunity-management/services/opportunity/domain/events"
	"github.com/ghuser/opportunity-management/services/opportunity/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	temporalWorker, err := startTemporalWorker(appConfig)
	if err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalWorker.Stop()

	outboxCtx, cancelOutbox := context.WithCancel(ctx)
	go runOutboxRelay(outboxCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelOutbox()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		oppevents.TopicOpportunityCreated:       handleOpportunityCreated(a),
		oppevents.TopicOpportunityStatusChanged: handleOpportunityStatusChanged(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics",
		[]string{oppevents.TopicOpportunityCreated, oppevents.TopicOpportunityStatusChanged})
	return nil
}

// handleOpportunityCreated returns a handler for opportunity.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleOpportunityCreated(a *app.Application) func(context.Context, *message.Message) error {
	repo := postgres.NewOpportunityRepository(a.Db, nil)
	oppCache := cache.NewOpportunityCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt oppevents.OpportunityCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		o, err := repo.GetByID(ctx, evt.OpportunityID)
		if err != nil {
			a.Logger.WarnContext(ctx, "cache warm lookup failed for opportunity.created",
				"opportunity_id", evt.OpportunityID, "error", err)
			return nil // base record may have been cancelled already; nothing to warm
		}

		if err := oppCache.Set(ctx, o); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for opportunity.created",
				"opportunity_id", evt.OpportunityID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"opportunity_id", evt.OpportunityID, "customer_id", evt.CustomerID)
		}

		return nil
	}
}

// handleOpportunityStatusChanged returns a handler for opportunity.status_changed
// events. Invalidates the cached aggregate and writes an audit log line.
func handleOpportunityStatusChanged(a *app.Application) func(context.Context, *message.Message) error {
	oppCache := cache.NewOpportunityCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt oppevents.OpportunityStatusChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := oppCache.Delete(ctx, evt.OpportunityID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for opportunity.status_changed",
				"opportunity_id", evt.OpportunityID, "error", err)
		}

		a.Logger.InfoContext(ctx, "opportunity status changed",
			"opportunity_id", evt.OpportunityID,
			"from", evt.From,
			"to", evt.To,
			"changed_by", evt.ChangedBy,
			"reason", evt.Reason,
		)
		return nil
	}
}

// startTemporalWorker registers the creation workflow and its activities and
// starts polling the opportunity task queue.
func startTemporalWorker(a *app.Application) (worker.Worker, error) {
	svcs := appsvcs.New(a)
	activities := oppworkflows.NewCreationActivities(svcs)

	w := worker.New(a.TemporalClient.Client, oppworkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(oppworkflows.CreateOpportunityWorkflow)
	w.RegisterActivity(activities.ExecuteCreation)

	if err := w.Start(); err != nil {
		return nil, err
	}
	a.Logger.Info("temporal worker started", "task_queue", oppworkflows.TaskQueue)
	return w, nil
}

// runOutboxRelay polls the outbox for unpublished events and forwards them to
// the EventBus. Runs until ctx is cancelled.
// The Watermill Forwarder (started in cmd/api/main.go) handles at-least-once
// delivery; this relay is a secondary safety net for future outbox tables.
func runOutboxRelay(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("outbox relay shutting down")
			return
		case <-ticker.C:
			// TODO: query outbox table, publish unpublished events, mark as published
		}
	}
}
