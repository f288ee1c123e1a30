package rating

import (
	"fmt"
	"math"

	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/shopspring/decimal"
)

// eloScale is the rating difference at which the stronger team is expected to
// win about 91% of the time.
const eloScale = 480.0

func init() {
	if err := Register(models.RankingLogicModifiedElo, newModifiedElo); err != nil {
		panic(err)
	}
}

// ModifiedElo rates doubles by comparing team averages.
type ModifiedElo struct {
	K int
}

func newModifiedElo(cfg models.RatingConfig) (Engine, error) {
	elo, ok := cfg.(models.ModifiedEloConfig)
	if !ok {
		return nil, fmt.Errorf("expected %s config, got %T", models.RankingLogicModifiedElo, cfg)
	}
	if elo.K <= 0 {
		return nil, fmt.Errorf("k must be a positive integer")
	}
	return ModifiedElo{K: elo.K}, nil
}

// ExpectedScore is the probability that a team averaging x beats a team averaging y.
func ExpectedScore(x, y float64) float64 {
	return 1 / (1 + math.Pow(10, (y-x)/eloScale))
}

// MatchDelta returns team1's rating change, rounded half away from zero to two
// places. Team2's change is exactly its negation.
func (e ModifiedElo) MatchDelta(team1, team2 [2]decimal.Decimal, team1Won bool) decimal.Decimal {
	two := decimal.NewFromInt(2)
	x := team1[0].Add(team1[1]).Div(two).InexactFloat64()
	y := team2[0].Add(team2[1]).Div(two).InexactFloat64()

	delta := decimal.NewFromFloat(float64(e.K) * ExpectedScore(x, y)).Round(2)
	if !team1Won {
		delta = delta.Neg()
	}
	return delta
}
