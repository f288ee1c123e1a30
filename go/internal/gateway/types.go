package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/shuttleleague/go/internal/events"
)

// LiveEvent is the frame written to websocket clients
type LiveEvent struct {
	ID        string           `json:"id"`
	GameDayID string           `json:"game_day_id"`
	Type      events.EventType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Data      json.RawMessage  `json:"data"`
}

// liveEventFromEnvelope maps a relayed envelope onto a client frame, rejecting types the feed does not carry.
func liveEventFromEnvelope(env events.Envelope) (*LiveEvent, error) {
	switch env.EventType {
	case events.EventTypeGameDayCreated,
		events.EventTypeGameDayStarted,
		events.EventTypeMatchScoreSubmitted,
		events.EventTypeGameDayCompleted,
		events.EventTypeGameDayDeleted:
	default:
		return nil, fmt.Errorf("unknown event type: %s", env.EventType)
	}

	return &LiveEvent{
		ID:        env.EventID,
		GameDayID: env.GameDayID,
		Type:      env.EventType,
		Timestamp: env.Timestamp,
		Data:      env.Payload,
	}, nil
}

// ParseEventPayload decodes event data into its typed payload
func ParseEventPayload(event *LiveEvent) (interface{}, error) {
	var target interface{}
	switch event.Type {
	case events.EventTypeGameDayCreated:
		target = &events.GameDayCreatedPayload{}
	case events.EventTypeGameDayStarted:
		target = &events.GameDayStartedPayload{}
	case events.EventTypeMatchScoreSubmitted:
		target = &events.MatchScoreSubmittedPayload{}
	case events.EventTypeGameDayCompleted:
		target = &events.GameDayCompletedPayload{}
	case events.EventTypeGameDayDeleted:
		target = &events.GameDayDeletedPayload{}
	default:
		return nil, nil
	}

	if err := json.Unmarshal(event.Data, target); err != nil {
		return nil, err
	}
	return target, nil
}

// ConnectionStats summarises open websocket connections
type ConnectionStats struct {
	TotalConnections   int            `json:"total_connections"`
	ActiveGameDays     int            `json:"active_game_days"`
	GameDayConnections map[string]int `json:"game_day_connections"`
}
