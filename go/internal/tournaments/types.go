package tournaments

import (
	"github.com/mcdev12/shuttleleague/go/internal/models"
)

// UpdateSettingsRequest carries new rating parameters for a LEAGUE tournament.
// RankingLogic may be sent but must match the stored algorithm.
type UpdateSettingsRequest struct {
	K               *int    `json:"k"`
	AbsenteeDemerit *int    `json:"absenteeDemerit"`
	RankingLogic    *string `json:"rankingLogic,omitempty"`
}

// Ranking is a tournament's public leaderboard
type Ranking struct {
	Tournament models.Tournament
	Entries    []RankingEntry
}

// RankingEntry is one leaderboard row. Position is 1-based.
type RankingEntry struct {
	Position int
	Player   models.TournamentPlayer
}
