package gameday

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnsupportedGroupSize means a group outside 4..5 reached the scheduler.
var ErrUnsupportedGroupSize = errors.New("unsupported group size")

// Seat indices into a group ordered strongest first: A=0, B=1, C=2, D=3, E=4.
// Each row is {team1 player 1, team1 player 2, team2 player 1, team2 player 2}.
var schedules = map[int][][4]int{
	4: {
		{0, 1, 2, 3}, // A,B v C,D
		{0, 2, 1, 3}, // A,C v B,D
		{0, 3, 1, 2}, // A,D v B,C
	},
	5: {
		{0, 1, 2, 3}, // A,B v C,D
		{0, 2, 1, 4}, // A,C v B,E
		{0, 4, 1, 3}, // A,E v B,D
		{0, 3, 2, 4}, // A,D v C,E
		{1, 2, 3, 4}, // B,C v D,E
	},
}

// ScheduledMatch is one generated doubles pairing. Order is 1-based.
type ScheduledMatch struct {
	Order int
	Team1 [2]uuid.UUID
	Team2 [2]uuid.UUID
}

// GenerateSchedule returns the fixed round-robin for a group of 4 or 5 players,
// given in seat order.
func GenerateSchedule(players []uuid.UUID) ([]ScheduledMatch, error) {
	table, ok := schedules[len(players)]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedGroupSize, len(players))
	}

	matches := make([]ScheduledMatch, len(table))
	for i, seats := range table {
		matches[i] = ScheduledMatch{
			Order: i + 1,
			Team1: [2]uuid.UUID{players[seats[0]], players[seats[1]]},
			Team2: [2]uuid.UUID{players[seats[2]], players[seats[3]]},
		}
	}
	return matches, nil
}
