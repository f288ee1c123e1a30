package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/events"
)

// OutboxEvent is an unsent row of the game day outbox
type OutboxEvent struct {
	ID        uuid.UUID        `json:"id"`
	GameDayID uuid.UUID        `json:"game_day_id"`
	EventType events.EventType `json:"event_type"`
	Payload   json.RawMessage  `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
}

// Publisher delivers an outbox event to the message bus
type Publisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}
