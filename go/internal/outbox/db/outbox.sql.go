package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const fetchOutboxByID = `-- name: FetchOutboxByID :one
SELECT id, game_day_id, event_type, payload, created_at, sent_at
FROM gameday_outbox
WHERE id = $1 AND sent_at IS NULL
`

func (q *Queries) FetchOutboxByID(ctx context.Context, id uuid.UUID) (GamedayOutbox, error) {
	row := q.db.QueryRowContext(ctx, fetchOutboxByID, id)
	var i GamedayOutbox
	err := row.Scan(
		&i.ID,
		&i.GameDayID,
		&i.EventType,
		&i.Payload,
		&i.CreatedAt,
		&i.SentAt,
	)
	return i, err
}

const fetchUnsentOutbox = `-- name: FetchUnsentOutbox :many
SELECT id, game_day_id, event_type, payload, created_at, sent_at
FROM gameday_outbox
WHERE sent_at IS NULL
ORDER BY created_at, id
LIMIT $1
`

func (q *Queries) FetchUnsentOutbox(ctx context.Context, limit int32) ([]GamedayOutbox, error) {
	rows, err := q.db.QueryContext(ctx, fetchUnsentOutbox, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GamedayOutbox
	for rows.Next() {
		var i GamedayOutbox
		if err := rows.Scan(
			&i.ID,
			&i.GameDayID,
			&i.EventType,
			&i.Payload,
			&i.CreatedAt,
			&i.SentAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxSent = `-- name: MarkOutboxSent :exec
UPDATE gameday_outbox SET sent_at = $2 WHERE id = $1
`

func (q *Queries) MarkOutboxSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	_, err := q.db.ExecContext(ctx, markOutboxSent, id, sentAt)
	return err
}

const countPendingOutbox = `-- name: CountPendingOutbox :one
SELECT COUNT(*) FROM gameday_outbox WHERE sent_at IS NULL
`

func (q *Queries) CountPendingOutbox(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPendingOutbox)
	var count int64
	err := row.Scan(&count)
	return count, err
}
