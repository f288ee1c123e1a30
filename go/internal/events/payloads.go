package events

import (
	"encoding/json"
	"time"
)

// Event payload types shared by the game day app, the outbox relay, the gateway and the archiver

// EventType names an outbox event. It is also the last token of the NATS subject.
type EventType string

const (
	EventTypeGameDayCreated      EventType = "GameDayCreated"
	EventTypeGameDayStarted      EventType = "GameDayStarted"
	EventTypeMatchScoreSubmitted EventType = "MatchScoreSubmitted"
	EventTypeGameDayCompleted    EventType = "GameDayCompleted"
	EventTypeGameDayDeleted      EventType = "GameDayDeleted"
)

// GameDayCreatedPayload is the payload for a GameDayCreated event
type GameDayCreatedPayload struct {
	GameDayID    string    `json:"game_day_id"`
	TournamentID string    `json:"tournament_id"`
	GameDate     string    `json:"game_date"`
	GroupSizes   []int     `json:"group_sizes"`
	PlayerCount  int       `json:"player_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// GameDayStartedPayload is the payload for a GameDayStarted event
type GameDayStartedPayload struct {
	GameDayID    string    `json:"game_day_id"`
	TournamentID string    `json:"tournament_id"`
	StartedAt    time.Time `json:"started_at"`
}

// MatchScoreSubmittedPayload is the payload for a MatchScoreSubmitted event
type MatchScoreSubmittedPayload struct {
	GameDayID   string    `json:"game_day_id"`
	GroupID     string    `json:"group_id"`
	GroupNumber int       `json:"group_number"`
	MatchID     string    `json:"match_id"`
	MatchOrder  int       `json:"match_order"`
	Team1Score  int       `json:"team1_score"`
	Team2Score  int       `json:"team2_score"`
	Version     int64     `json:"version"`
	SubmittedBy string    `json:"submitted_by"`
	ByPlayer    bool      `json:"by_player"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// RatingChange is one player's net rating change for a completed game day
type RatingChange struct {
	TournamentPlayerID string `json:"tournament_player_id"`
	DisplayName        string `json:"display_name"`
	Previous           string `json:"previous"`
	New                string `json:"new"`
	Delta              string `json:"delta"`
}

// GameDayCompletedPayload is the payload for a GameDayCompleted event
type GameDayCompletedPayload struct {
	GameDayID     string         `json:"game_day_id"`
	TournamentID  string         `json:"tournament_id"`
	GameDate      string         `json:"game_date"`
	MatchCount    int            `json:"match_count"`
	RatingChanges []RatingChange `json:"rating_changes"`
	CompletedAt   time.Time      `json:"completed_at"`
}

// GameDayDeletedPayload is the payload for a GameDayDeleted event
type GameDayDeletedPayload struct {
	GameDayID    string    `json:"game_day_id"`
	TournamentID string    `json:"tournament_id"`
	Reason       string    `json:"reason"` // "discarded" or "cancelled"
	DeletedAt    time.Time `json:"deleted_at"`
}

// Stream layout shared by the outbox relay and its consumers
const (
	StreamName    = "GAMEDAY_EVENTS"
	SubjectPrefix = "gameday.events"
)

// Subject returns the NATS subject an event type is published on
func Subject(t EventType) string {
	return SubjectPrefix + "." + string(t)
}

// Envelope wraps an outbox payload on the wire
type Envelope struct {
	EventID   string          `json:"event_id"`
	EventType EventType       `json:"event_type"`
	GameDayID string          `json:"game_day_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}
