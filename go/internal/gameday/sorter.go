package gameday

import (
	"bytes"
	"sort"

	"github.com/mcdev12/shuttleleague/go/internal/models"
)

// SortRoster orders players by rank score descending with unrated players last.
// Ties fall back to user id, then registration id, so identical input always
// yields the same order.
func SortRoster(players []models.TournamentPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		switch {
		case a.RankScore.Valid && !b.RankScore.Valid:
			return true
		case !a.RankScore.Valid && b.RankScore.Valid:
			return false
		case a.RankScore.Valid && b.RankScore.Valid:
			if c := a.RankScore.Decimal.Cmp(b.RankScore.Decimal); c != 0 {
				return c > 0
			}
		}
		if c := bytes.Compare(a.UserID[:], b.UserID[:]); c != 0 {
			return c < 0
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
}

// AssignGroups deals sorted players into consecutive groups of the given sizes:
// the first sizes[0] players form group 1, and so on.
func AssignGroups(players []models.TournamentPlayer, sizes []int) [][]models.TournamentPlayer {
	groups := make([][]models.TournamentPlayer, 0, len(sizes))
	next := 0
	for _, size := range sizes {
		groups = append(groups, players[next:next+size])
		next += size
	}
	return groups
}
