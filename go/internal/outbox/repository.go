package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/mcdev12/shuttleleague/go/internal/outbox/db"
)

// ErrEventNotFound is returned for missing or already sent events
var ErrEventNotFound = errors.New("outbox event not found or already sent")

type Repository struct {
	queries *db.Queries
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		queries: db.New(database),
	}
}

func (r *Repository) FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	out := make([]OutboxEvent, len(rows))
	for i, row := range rows {
		out[i] = dbOutboxToEvent(row)
	}
	return out, nil
}

func (r *Repository) FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	row, err := r.queries.FetchOutboxByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}
	event := dbOutboxToEvent(row)
	return &event, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := r.queries.MarkOutboxSent(ctx, id, at); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	n, err := r.queries.CountPendingOutbox(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending outbox events: %w", err)
	}
	return int(n), nil
}

func dbOutboxToEvent(row db.GamedayOutbox) OutboxEvent {
	return OutboxEvent{
		ID:        row.ID,
		GameDayID: row.GameDayID,
		EventType: events.EventType(row.EventType),
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
	}
}
