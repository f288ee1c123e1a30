package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"
)

type GameDay struct {
	ID           uuid.UUID `json:"id"`
	TournamentID uuid.UUID `json:"tournament_id"`
	GameDate     time.Time `json:"game_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GameDayGroup struct {
	ID          uuid.UUID `json:"id"`
	GameDayID   uuid.UUID `json:"game_day_id"`
	GroupNumber int32     `json:"group_number"`
}

type GameDayGroupPlayer struct {
	ID                    uuid.UUID           `json:"id"`
	GroupID               uuid.UUID           `json:"group_id"`
	TournamentPlayerID    uuid.UUID           `json:"tournament_player_id"`
	Position              int32               `json:"position"`
	RankScoreAtAssignment decimal.NullDecimal `json:"rank_score_at_assignment"`
}

type GameDayMatch struct {
	ID             uuid.UUID     `json:"id"`
	GroupID        uuid.UUID     `json:"group_id"`
	MatchOrder     int32         `json:"match_order"`
	Team1Player1ID uuid.UUID     `json:"team1_player1_id"`
	Team1Player2ID uuid.UUID     `json:"team1_player2_id"`
	Team2Player1ID uuid.UUID     `json:"team2_player1_id"`
	Team2Player2ID uuid.UUID     `json:"team2_player2_id"`
	Team1Score     sql.NullInt32 `json:"team1_score"`
	Team2Score     sql.NullInt32 `json:"team2_score"`
	Version        int64         `json:"version"`
}

type TournamentPlayer struct {
	ID              uuid.UUID           `json:"id"`
	TournamentID    uuid.UUID           `json:"tournament_id"`
	UserID          uuid.UUID           `json:"user_id"`
	FirstName       string              `json:"first_name"`
	LastName        string              `json:"last_name"`
	Status          string              `json:"status"`
	RankScore       decimal.NullDecimal `json:"rank_score"`
	StatusChangedAt time.Time           `json:"status_changed_at"`
}

type LeagueSetting struct {
	TournamentID uuid.UUID             `json:"tournament_id"`
	RankingLogic string                `json:"ranking_logic"`
	RatingConfig pqtype.NullRawMessage `json:"rating_config"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type RankScoreHistory struct {
	ID                 uuid.UUID       `json:"id"`
	TournamentPlayerID uuid.UUID       `json:"tournament_player_id"`
	MatchID            uuid.UUID       `json:"match_id"`
	PreviousScore      decimal.Decimal `json:"previous_score"`
	NewScore           decimal.Decimal `json:"new_score"`
	ChangedAt          time.Time       `json:"changed_at"`
}

type GamedayOutbox struct {
	ID        uuid.UUID       `json:"id"`
	GameDayID uuid.UUID       `json:"game_day_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    sql.NullTime    `json:"sent_at"`
}
