// Package rating turns a day of scored doubles matches into rating changes.
package rating

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Engine computes the rating change of one match for team1. Implementations must
// return a value whose negation is team2's change.
type Engine interface {
	MatchDelta(team1, team2 [2]decimal.Decimal, team1Won bool) decimal.Decimal
}

// MatchResult is a scored match expressed in tournament player ids.
type MatchResult struct {
	MatchID    uuid.UUID
	Team1      [2]uuid.UUID
	Team2      [2]uuid.UUID
	Team1Score int
	Team2Score int
}

// HistoryEntry is the change one match caused for one player, measured from the
// player's rating before any match of the day was applied.
type HistoryEntry struct {
	TournamentPlayerID uuid.UUID
	MatchID            uuid.UUID
	Previous           decimal.Decimal
	New                decimal.Decimal
	Delta              decimal.Decimal
}

// Result holds per-match history in match order and the net change per player.
type Result struct {
	History []HistoryEntry
	Deltas  map[uuid.UUID]decimal.Decimal
}

// Compute rates every match against the same starting ratings. A team wins only
// with a strictly higher score.
func Compute(engine Engine, matches []MatchResult, ratings map[uuid.UUID]decimal.Decimal) (*Result, error) {
	if engine == nil {
		return nil, fmt.Errorf("rating engine is required")
	}

	result := &Result{
		History: make([]HistoryEntry, 0, len(matches)*4),
		Deltas:  make(map[uuid.UUID]decimal.Decimal),
	}

	for _, m := range matches {
		if err := validateMatch(m); err != nil {
			return nil, err
		}

		var team1, team2 [2]decimal.Decimal
		for i, id := range m.Team1 {
			r, ok := ratings[id]
			if !ok {
				return nil, fmt.Errorf("no rating for player %s in match %s", id, m.MatchID)
			}
			team1[i] = r
		}
		for i, id := range m.Team2 {
			r, ok := ratings[id]
			if !ok {
				return nil, fmt.Errorf("no rating for player %s in match %s", id, m.MatchID)
			}
			team2[i] = r
		}

		team1Delta := engine.MatchDelta(team1, team2, m.Team1Score > m.Team2Score)
		team2Delta := team1Delta.Neg()

		for i, id := range m.Team1 {
			result.add(id, m.MatchID, team1[i], team1Delta)
		}
		for i, id := range m.Team2 {
			result.add(id, m.MatchID, team2[i], team2Delta)
		}
	}

	return result, nil
}

func (r *Result) add(playerID, matchID uuid.UUID, previous, delta decimal.Decimal) {
	r.History = append(r.History, HistoryEntry{
		TournamentPlayerID: playerID,
		MatchID:            matchID,
		Previous:           previous,
		New:                previous.Add(delta),
		Delta:              delta,
	})
	r.Deltas[playerID] = r.Deltas[playerID].Add(delta)
}

// PlayerIDs returns every player with a delta, sorted by id.
func (r *Result) PlayerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Deltas))
	for id := range r.Deltas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })
	return ids
}

func validateMatch(m MatchResult) error {
	if m.Team1Score < 0 || m.Team2Score < 0 {
		return fmt.Errorf("match %s has a negative score", m.MatchID)
	}
	seen := make(map[uuid.UUID]bool, 4)
	for _, id := range [4]uuid.UUID{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]} {
		if seen[id] {
			return fmt.Errorf("player %s appears twice in match %s", id, m.MatchID)
		}
		seen[id] = true
	}
	return nil
}
