package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlayerStatus is the registration status of a player within a tournament
type PlayerStatus string

const (
	PlayerStatusEnabled  PlayerStatus = "ENABLED"
	PlayerStatusDisabled PlayerStatus = "DISABLED"
)

// TournamentPlayer is a user's registration in a tournament, carrying the player's rating.
// A null RankScore sorts below every rated player.
type TournamentPlayer struct {
	ID              uuid.UUID           `json:"id"`
	TournamentID    uuid.UUID           `json:"tournament_id"`
	UserID          uuid.UUID           `json:"user_id"`
	FirstName       string              `json:"first_name"`
	LastName        string              `json:"last_name"`
	Status          PlayerStatus        `json:"status"`
	RankScore       decimal.NullDecimal `json:"rank_score"`
	StatusChangedAt time.Time           `json:"status_changed_at"`
}

// DisplayName returns "First Last".
func (p TournamentPlayer) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Rating returns the rank score, treating null as zero.
func (p TournamentPlayer) Rating() decimal.Decimal {
	if !p.RankScore.Valid {
		return decimal.Zero
	}
	return p.RankScore.Decimal
}

// RankScoreHistory is one append-only audit row: the rating change a single match
// caused for a single player.
type RankScoreHistory struct {
	ID                 uuid.UUID       `json:"id"`
	TournamentPlayerID uuid.UUID       `json:"tournament_player_id"`
	MatchID            uuid.UUID       `json:"match_id"`
	PreviousScore      decimal.Decimal `json:"previous_score"`
	NewScore           decimal.Decimal `json:"new_score"`
	ChangedAt          time.Time       `json:"changed_at"`
}
