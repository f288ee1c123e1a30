package models

import (
	"time"

	"github.com/google/uuid"
)

// TournamentType represents the format of a tournament
type TournamentType string

const (
	TournamentTypeLeague TournamentType = "LEAGUE"
	TournamentTypeOneOff TournamentType = "ONE_OFF"
)

// Tournament represents a badminton tournament
type Tournament struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Type      TournamentType `json:"type"`
	Enabled   bool           `json:"enabled"`
	OwnerID   uuid.UUID      `json:"owner_id"`
	AdminIDs  []uuid.UUID    `json:"admin_ids"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// HasAdmin reports whether userID is listed as an admin of the tournament.
func (t Tournament) HasAdmin(userID uuid.UUID) bool {
	for _, id := range t.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// LeagueSettings holds the rating configuration of a LEAGUE tournament.
// RankingLogic is fixed at creation; only the config's numeric parameters change.
type LeagueSettings struct {
	TournamentID uuid.UUID    `json:"tournament_id"`
	RankingLogic RankingLogic `json:"ranking_logic"`
	RatingConfig RatingConfig `json:"rating_config"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
