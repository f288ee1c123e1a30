package gameday

import (
	"math/rand"

	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
)

const (
	MinPlayers = 4
	MaxPlayers = 32
)

// ValidatePlayerCount reports whether n players can be split into groups of 4 and 5.
// Between MinPlayers and MaxPlayers only 6, 7 and 11 cannot.
func ValidatePlayerCount(n int) error {
	switch {
	case n < MinPlayers:
		return apperrors.Validation("Cannot create a game day with fewer than %d players", MinPlayers)
	case n > MaxPlayers:
		return apperrors.Validation("Cannot create a game day with more than %d players", MaxPlayers)
	case n == 6 || n == 7 || n == 11:
		return apperrors.Validation("Player count of %d cannot be split into groups of 4 or 5. Invalid counts: 6, 7, 11", n)
	}
	return nil
}

// GroupSizes splits n players into groups of 4, using as few groups of 5 as the
// count allows. The number of each size is fixed by n; their order is shuffled with rng.
func GroupSizes(n int, rng *rand.Rand) ([]int, error) {
	if err := ValidatePlayerCount(n); err != nil {
		return nil, err
	}

	// 5 ≡ 1 (mod 4), so n mod 4 groups of five leave a multiple of four.
	fives := n % 4
	fours := (n - 5*fives) / 4

	sizes := make([]int, 0, fours+fives)
	for i := 0; i < fours; i++ {
		sizes = append(sizes, 4)
	}
	for i := 0; i < fives; i++ {
		sizes = append(sizes, 5)
	}

	if rng != nil {
		rng.Shuffle(len(sizes), func(i, j int) { sizes[i], sizes[j] = sizes[j], sizes[i] })
	}
	return sizes, nil
}
