package gameday

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/models"
)

// CreateGameDayRequest represents the data needed to create a new game day
type CreateGameDayRequest struct {
	GameDate  string      `json:"gameDate"`
	PlayerIDs []uuid.UUID `json:"playerIds"`
}

// SubmitMatchScoreRequest carries both team scores for one match.
// ExpectedVersion pins the match version the submitter read; when nil the
// version read inside the transaction is used.
type SubmitMatchScoreRequest struct {
	Team1Score      *int   `json:"team1Score"`
	Team2Score      *int   `json:"team2Score"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// GameDaySummary is the slim listing shown to players
type GameDaySummary struct {
	ID       uuid.UUID            `json:"id"`
	GameDate time.Time            `json:"gameDate"`
	Status   models.GameDayStatus `json:"status"`
}

// NewGameDayParams is the game day row written on creation
type NewGameDayParams struct {
	ID           uuid.UUID
	TournamentID uuid.UUID
	GameDate     time.Time
	Status       models.GameDayStatus
	CreatedAt    time.Time
}

// NewGroupPlayerParams seats a tournament player in a group
type NewGroupPlayerParams struct {
	GroupID  uuid.UUID
	Position int
	Player   models.TournamentPlayer
}

// NewMatchParams is a generated match row
type NewMatchParams struct {
	GroupID        uuid.UUID
	MatchOrder     int
	Team1Player1ID uuid.UUID
	Team1Player2ID uuid.UUID
	Team2Player1ID uuid.UUID
	Team2Player2ID uuid.UUID
}

// ScoreUpdate writes both scores of a match
type ScoreUpdate struct {
	MatchID    uuid.UUID
	Team1Score int
	Team2Score int
}
