package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ghuser/opportunity-management/pkg/database"
	"github.com/ghuser/opportunity-management/pkg/events"
	oppdomain "github.com/ghuser/opportunity-management/services/opportunity/domain"
	domainevents "github.com/ghuser/opportunity-management/services/opportunity/domain/events"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
	"github.com/ghuser/opportunity-management/services/opportunity/domain/repositories"
	"github.com/ghuser/opportunity-management/services/opportunity/infrastructure/persistence/postgres/db"
)

// unique constraint names from migrations/opportunity; used to map 23505
// violations back to domain errors.
const (
	constraintProblemStatementSlot = "problem_statements_opportunity_id_key"
	constraintTimelineSlot         = "timeline_requirements_opportunity_id_key"
	constraintSkillUniq            = "skill_requirements_opportunity_skill_uniq"
)

const dateLayout = "2006-01-02"

// OpportunityRepository implements repositories.OpportunityRepository
// against PostgreSQL.
type OpportunityRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOpportunityRepository returns an OpportunityRepository backed by the
// given connection pool and event bus. The bus is used to publish domain
// events within the same transaction as the write (outbox pattern).
func NewOpportunityRepository(database *database.Database, bus *events.EventBus) *OpportunityRepository {
	return &OpportunityRepository{db: database, bus: bus}
}

// Save persists the base record plus the initial status history entry and
// publishes OpportunityCreatedEvent, all within one transaction.
func (r *OpportunityRepository) Save(ctx context.Context, o *models.Opportunity) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertOpportunity(ctx, db.InsertOpportunityParams{
			ID:                       o.ID,
			Title:                    o.Title,
			CustomerID:               o.CustomerID,
			CustomerName:             o.CustomerName,
			SalesManagerID:           o.SalesManagerID,
			Description:              o.Description,
			Priority:                 o.Priority.String(),
			AnnualRecurringRevenue:   o.AnnualRecurringRevenue.String(),
			RegionName:               o.Geographic.RegionName,
			RequiresPhysicalPresence: o.Geographic.RequiresPhysicalPresence,
			AllowsRemoteWork:         o.Geographic.AllowsRemoteWork,
			Status:                   o.Status.String(),
			CreatedAt:                o.CreatedAt,
			UpdatedAt:                o.UpdatedAt,
		}); err != nil {
			return fmt.Errorf("insert opportunity: %w", err)
		}

		for _, entry := range o.StatusHistory {
			if err := q.InsertStatusChange(ctx, statusChangeParams(o.ID, entry)); err != nil {
				return fmt.Errorf("insert status history: %w", err)
			}
		}

		if r.bus != nil {
			if err := r.publishCreated(ctx, tx, o); err != nil {
				return fmt.Errorf("publish opportunity created: %w", err)
			}
		}
		return nil
	})
}

// GetByID loads the full aggregate. Returns ErrOpportunityNotFound when no
// base record exists.
func (r *OpportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error) {
	q := db.New(r.db.DB())

	row, err := q.GetOpportunityByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, oppdomain.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("query opportunity: %w", err)
	}

	o, err := rowToOpportunity(row)
	if err != nil {
		return nil, err
	}

	ps, err := q.GetProblemStatementByOpportunityID(ctx, id)
	switch {
	case err == nil:
		o.ProblemStatement = &models.ProblemStatement{
			ID:            ps.ID,
			OpportunityID: ps.OpportunityID,
			Content:       ps.Content,
			CreatedAt:     ps.CreatedAt,
		}
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("query problem statement: %w", err)
	}

	skills, err := q.ListSkillRequirementsByOpportunityID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query skill requirements: %w", err)
	}
	for _, sr := range skills {
		o.SkillRequirements = append(o.SkillRequirements, models.SkillRequirement{
			ID:             sr.ID,
			OpportunityID:  sr.OpportunityID,
			SkillName:      sr.SkillName,
			SkillType:      models.SkillType(sr.SkillType),
			Importance:     models.Importance(sr.ImportanceLevel),
			MinProficiency: models.Proficiency(sr.MinimumProficiencyLevel),
			CreatedAt:      sr.CreatedAt,
		})
	}

	tl, err := q.GetTimelineByOpportunityID(ctx, id)
	switch {
	case err == nil:
		timeline, err := rowToTimeline(tl)
		if err != nil {
			return nil, err
		}
		o.Timeline = timeline
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("query timeline: %w", err)
	}

	history, err := q.ListStatusChangesByOpportunityID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query status history: %w", err)
	}
	for _, h := range history {
		o.StatusHistory = append(o.StatusHistory, models.StatusChange{
			ID:        h.ID,
			Status:    models.Status(h.Status),
			Reason:    h.Reason.String,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		})
	}

	return o, nil
}

// Find retrieves a paginated list of base records plus the total count.
func (r *OpportunityRepository) Find(ctx context.Context, f repositories.Filter, opts repositories.QueryOpts) ([]*models.Opportunity, int, error) {
	q := db.New(r.db.DB())

	var status, priority sql.NullString
	if f.Status != nil {
		status = sql.NullString{String: f.Status.String(), Valid: true}
	}
	if f.Priority != nil {
		priority = sql.NullString{String: f.Priority.String(), Valid: true}
	}
	var customerID, salesManagerID uuid.NullUUID
	if f.CustomerID != nil {
		customerID = uuid.NullUUID{UUID: *f.CustomerID, Valid: true}
	}
	if f.SalesManagerID != nil {
		salesManagerID = uuid.NullUUID{UUID: *f.SalesManagerID, Valid: true}
	}

	rows, err := q.FindOpportunities(ctx, db.FindOpportunitiesParams{
		Status:         status,
		Priority:       priority,
		CustomerID:     customerID,
		SalesManagerID: salesManagerID,
		Limit:          int32(opts.Limit),
		Offset:         int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query opportunities: %w", err)
	}

	total, err := q.CountOpportunities(ctx, db.CountOpportunitiesParams{
		Status:         status,
		Priority:       priority,
		CustomerID:     customerID,
		SalesManagerID: salesManagerID,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("count opportunities: %w", err)
	}

	out := make([]*models.Opportunity, 0, len(rows))
	for _, row := range rows {
		o, err := rowToOpportunity(row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, o)
	}
	return out, int(total), nil
}

// UpdateStatus persists the aggregate's status fields and the latest history
// entry in one transaction, publishing OpportunityStatusChangedEvent.
func (r *OpportunityRepository) UpdateStatus(ctx context.Context, o *models.Opportunity) error {
	if len(o.StatusHistory) < 2 {
		return fmt.Errorf("update status: aggregate has no transition to persist")
	}
	entry := o.StatusHistory[len(o.StatusHistory)-1]
	previous := o.StatusHistory[len(o.StatusHistory)-2]

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		var cancelledAt, deadline sql.NullTime
		var reason sql.NullString
		if o.CancelledAt != nil {
			cancelledAt = sql.NullTime{Time: *o.CancelledAt, Valid: true}
		}
		if o.ReactivationDeadline != nil {
			deadline = sql.NullTime{Time: *o.ReactivationDeadline, Valid: true}
		}
		if o.CancellationReason != "" {
			reason = sql.NullString{String: o.CancellationReason, Valid: true}
		}

		if err := q.UpdateOpportunityStatus(ctx, db.UpdateOpportunityStatusParams{
			ID:                   o.ID,
			Status:               o.Status.String(),
			CancelledAt:          cancelledAt,
			CancellationReason:   reason,
			ReactivationDeadline: deadline,
			UpdatedAt:            o.UpdatedAt,
		}); err != nil {
			return fmt.Errorf("update opportunity status: %w", err)
		}

		if err := q.InsertStatusChange(ctx, statusChangeParams(o.ID, entry)); err != nil {
			return fmt.Errorf("insert status history: %w", err)
		}

		if r.bus != nil {
			if err := r.publishStatusChanged(ctx, tx, o, previous.Status, entry); err != nil {
				return fmt.Errorf("publish status changed: %w", err)
			}
		}
		return nil
	})
}

// AddProblemStatement persists the 1:1 problem statement. The unique
// constraint on opportunity_id enforces cardinality.
func (r *OpportunityRepository) AddProblemStatement(ctx context.Context, ps *models.ProblemStatement) error {
	q := db.New(r.db.DB())
	if err := q.InsertProblemStatement(ctx, db.InsertProblemStatementParams{
		ID:            ps.ID,
		OpportunityID: ps.OpportunityID,
		Content:       ps.Content,
		CreatedAt:     ps.CreatedAt,
	}); err != nil {
		if isUniqueViolation(err, constraintProblemStatementSlot) {
			return oppdomain.ErrProblemStatementExists
		}
		return fmt.Errorf("insert problem statement: %w", err)
	}
	return nil
}

// AddSkillRequirement persists one skill requirement.
func (r *OpportunityRepository) AddSkillRequirement(ctx context.Context, sr *models.SkillRequirement) error {
	q := db.New(r.db.DB())
	if err := q.InsertSkillRequirement(ctx, db.InsertSkillRequirementParams{
		ID:                      sr.ID,
		OpportunityID:           sr.OpportunityID,
		SkillName:               sr.SkillName,
		SkillType:               sr.SkillType.String(),
		ImportanceLevel:         sr.Importance.String(),
		MinimumProficiencyLevel: sr.MinProficiency.String(),
		CreatedAt:               sr.CreatedAt,
	}); err != nil {
		if isUniqueViolation(err, constraintSkillUniq) {
			return fmt.Errorf("%w: %s", oppdomain.ErrDuplicateSkill, sr.SkillName)
		}
		return fmt.Errorf("insert skill requirement: %w", err)
	}
	return nil
}

// AddTimeline persists the 1:1 timeline requirement.
func (r *OpportunityRepository) AddTimeline(ctx context.Context, tl *models.TimelineRequirement) error {
	days := make([]string, len(tl.SpecificDays))
	for i, d := range tl.SpecificDays {
		days[i] = d.Format(dateLayout)
	}
	payload, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("marshal specific days: %w", err)
	}

	q := db.New(r.db.DB())
	if err := q.InsertTimelineRequirement(ctx, db.InsertTimelineRequirementParams{
		ID:            tl.ID,
		OpportunityID: tl.OpportunityID,
		StartDate:     tl.StartDate,
		EndDate:       tl.EndDate,
		IsFlexible:    tl.IsFlexible,
		SpecificDays:  payload,
		CreatedAt:     tl.CreatedAt,
	}); err != nil {
		if isUniqueViolation(err, constraintTimelineSlot) {
			return oppdomain.ErrTimelineExists
		}
		return fmt.Errorf("insert timeline: %w", err)
	}
	return nil
}

// Exists reports whether an opportunity with the given ID exists.
func (r *OpportunityRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := db.New(r.db.DB())
	exists, err := q.OpportunityExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check opportunity exists: %w", err)
	}
	return exists, nil
}

func (r *OpportunityRepository) publishCreated(ctx context.Context, tx *sql.Tx, o *models.Opportunity) error {
	event := domainevents.OpportunityCreatedEvent{
		EventID:                uuid.New(),
		Version:                1,
		OpportunityID:          o.ID,
		Title:                  o.Title,
		CustomerID:             o.CustomerID,
		CustomerName:           o.CustomerName,
		SalesManagerID:         o.SalesManagerID,
		Priority:               o.Priority.String(),
		AnnualRecurringRevenue: o.AnnualRecurringRevenue.String(),
		Status:                 o.Status.String(),
		OccurredAt:             o.CreatedAt,
	}
	return r.publishTx(ctx, tx, domainevents.TopicOpportunityCreated, event.EventID, event)
}

func (r *OpportunityRepository) publishStatusChanged(ctx context.Context, tx *sql.Tx, o *models.Opportunity, from models.Status, entry models.StatusChange) error {
	event := domainevents.OpportunityStatusChangedEvent{
		EventID:       uuid.New(),
		Version:       1,
		OpportunityID: o.ID,
		From:          from.String(),
		To:            entry.Status.String(),
		Reason:        entry.Reason,
		ChangedBy:     entry.ChangedBy,
		OccurredAt:    entry.ChangedAt,
	}
	return r.publishTx(ctx, tx, domainevents.TopicOpportunityStatusChanged, event.EventID, event)
}

func (r *OpportunityRepository) publishTx(_ context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

func statusChangeParams(opportunityID uuid.UUID, entry models.StatusChange) db.InsertStatusChangeParams {
	var reason sql.NullString
	if entry.Reason != "" {
		reason = sql.NullString{String: entry.Reason, Valid: true}
	}
	return db.InsertStatusChangeParams{
		ID:            entry.ID,
		OpportunityID: opportunityID,
		Status:        entry.Status.String(),
		Reason:        reason,
		ChangedBy:     entry.ChangedBy,
		ChangedAt:     entry.ChangedAt,
	}
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}

// rowToOpportunity maps a db.Opportunity to a domain models.Opportunity.
// Sub-resources and history are loaded separately.
func rowToOpportunity(row db.Opportunity) (*models.Opportunity, error) {
	arr, err := decimal.NewFromString(row.AnnualRecurringRevenue)
	if err != nil {
		return nil, fmt.Errorf("parse annual recurring revenue: %w", err)
	}
	o := &models.Opportunity{
		ID:                     row.ID,
		Title:                  row.Title,
		CustomerID:             row.CustomerID,
		CustomerName:           row.CustomerName,
		SalesManagerID:         row.SalesManagerID,
		Description:            row.Description,
		Priority:               models.Priority(row.Priority),
		AnnualRecurringRevenue: arr,
		Geographic: models.Geographic{
			RegionName:               row.RegionName,
			RequiresPhysicalPresence: row.RequiresPhysicalPresence,
			AllowsRemoteWork:         row.AllowsRemoteWork,
		},
		Status:             models.Status(row.Status),
		CancellationReason: row.CancellationReason.String,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if row.CancelledAt.Valid {
		t := row.CancelledAt.Time
		o.CancelledAt = &t
	}
	if row.ReactivationDeadline.Valid {
		t := row.ReactivationDeadline.Time
		o.ReactivationDeadline = &t
	}
	return o, nil
}

func rowToTimeline(row db.TimelineRequirement) (*models.TimelineRequirement, error) {
	var dayStrs []string
	if len(row.SpecificDays) > 0 {
		if err := json.Unmarshal(row.SpecificDays, &dayStrs); err != nil {
			return nil, fmt.Errorf("unmarshal specific days: %w", err)
		}
	}
	days := make([]time.Time, 0, len(dayStrs))
	for _, s := range dayStrs {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("parse specific day %q: %w", s, err)
		}
		days = append(days, d)
	}
	return &models.TimelineRequirement{
		ID:            row.ID,
		OpportunityID: row.OpportunityID,
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
		IsFlexible:    row.IsFlexible,
		SpecificDays:  days,
		CreatedAt:     row.CreatedAt,
	}, nil
}
