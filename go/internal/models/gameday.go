package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameDateLayout is the wire and storage format of a game date.
const GameDateLayout = "2006-01-02"

// GameDayStatus defines the lifecycle status of a game day.
type GameDayStatus string

const (
	GameDayStatusPending   GameDayStatus = "PENDING"
	GameDayStatusOngoing   GameDayStatus = "ONGOING"
	GameDayStatusCompleted GameDayStatus = "COMPLETED"
)

// GameDay is one scheduled day of league play. Groups are ordered by group number.
type GameDay struct {
	ID           uuid.UUID     `json:"id"`
	TournamentID uuid.UUID     `json:"tournament_id"`
	GameDate     time.Time     `json:"game_date"`
	Status       GameDayStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Groups       []Group       `json:"groups"`
}

// Group is a set of 4 or 5 players who play a fixed round-robin on a game day.
type Group struct {
	ID          uuid.UUID     `json:"id"`
	GameDayID   uuid.UUID     `json:"game_day_id"`
	GroupNumber int           `json:"group_number"`
	Players     []GroupPlayer `json:"players"`
	Matches     []Match       `json:"matches"`
}

// GroupPlayer is a tournament player's seat in a group. Position is the 0-based
// schedule label (A=0, B=1, ...). RankScoreAtAssignment is for display only;
// rating updates read the live TournamentPlayer rating.
type GroupPlayer struct {
	ID                    uuid.UUID           `json:"id"`
	GroupID               uuid.UUID           `json:"group_id"`
	TournamentPlayerID    uuid.UUID           `json:"tournament_player_id"`
	UserID                uuid.UUID           `json:"user_id"`
	DisplayName           string              `json:"display_name"`
	Position              int                 `json:"position"`
	RankScoreAtAssignment decimal.NullDecimal `json:"rank_score_at_assignment"`
	CurrentRankScore      decimal.NullDecimal `json:"current_rank_score"`
}

// Match is a doubles match between (Team1Player1, Team1Player2) and
// (Team2Player1, Team2Player2). Player fields hold GroupPlayer ids.
// Version increases on every score write.
type Match struct {
	ID             uuid.UUID `json:"id"`
	GroupID        uuid.UUID `json:"group_id"`
	MatchOrder     int       `json:"match_order"`
	Team1Player1ID uuid.UUID `json:"team1_player1_id"`
	Team1Player2ID uuid.UUID `json:"team1_player2_id"`
	Team2Player1ID uuid.UUID `json:"team2_player1_id"`
	Team2Player2ID uuid.UUID `json:"team2_player2_id"`
	Team1Score     *int      `json:"team1_score,omitempty"`
	Team2Score     *int      `json:"team2_score,omitempty"`
	Version        int64     `json:"version"`
}

// HasScore reports whether both team scores are set.
func (m Match) HasScore() bool {
	return m.Team1Score != nil && m.Team2Score != nil
}

// PlayerIDs returns the four group player ids in team order.
func (m Match) PlayerIDs() [4]uuid.UUID {
	return [4]uuid.UUID{m.Team1Player1ID, m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID}
}

// Player returns the group player with the given id.
func (g Group) Player(id uuid.UUID) (GroupPlayer, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return GroupPlayer{}, false
}

// FindMatch locates a match anywhere in the game day.
func (d GameDay) FindMatch(matchID uuid.UUID) (*Group, *Match) {
	for gi := range d.Groups {
		for mi := range d.Groups[gi].Matches {
			if d.Groups[gi].Matches[mi].ID == matchID {
				return &d.Groups[gi], &d.Groups[gi].Matches[mi]
			}
		}
	}
	return nil, nil
}
