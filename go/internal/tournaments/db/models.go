package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"
)

type Tournament struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Enabled   bool      `json:"enabled"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeagueSetting struct {
	TournamentID uuid.UUID             `json:"tournament_id"`
	RankingLogic string                `json:"ranking_logic"`
	RatingConfig pqtype.NullRawMessage `json:"rating_config"`
	UpdatedAt    time.Time             `json:"updated_at"`
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

type RankScoreHistory struct {
	ID                 uuid.UUID       `json:"id"`
	TournamentPlayerID uuid.UUID       `json:"tournament_player_id"`
	MatchID            uuid.UUID       `json:"match_id"`
	PreviousScore      decimal.Decimal `json:"previous_score"`
	NewScore           decimal.Decimal `json:"new_score"`
	ChangedAt          time.Time       `json:"changed_at"`
}
