package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type GamedayOutbox struct {
	ID        uuid.UUID       `json:"id"`
	GameDayID uuid.UUID       `json:"game_day_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    sql.NullTime    `json:"sent_at"`
}
