package matchview

import (
	"math"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

const (
	ratingFloor    = 3.0
	ratingCeiling  = 10.0
	ratingBaseline = 5.5
)

// Rating weights are a calibration, not a contract: the contract is that
// the result grows with every positive counter, shrinks with every
// negative one, and always lands in [3,10] at one decimal.
const (
	weightGoal          = 0.9
	weightAssist        = 0.6
	weightSave          = 0.25
	weightInterception  = 0.2
	weightTackle        = 0.2
	weightChanceCreated = 0.15
	weightKeyPass       = 0.1
	weightShotOnGoal    = 0.1
	weightPassCompleted = 0.005
	penaltyRedCard      = 1.5
	penaltyYellowCard   = 0.5
	penaltyOwnGoal      = 1.0
	penaltyGoalConceded = 0.2
)

// Rate computes a bounded [3,10] performance rating for one stat row. An
// explicit finite provider rating is trusted over recomputation.
func Rate(row matchdata.PlayerStatRow) float64 {
	if explicit, ok := explicitRating(row); ok {
		return clampRating(explicit)
	}

	score := ratingBaseline
	score += float64(row.Goals) * weightGoal
	score += float64(row.Assists) * weightAssist
	score += float64(row.Saves) * weightSave
	score += float64(row.Interceptions) * weightInterception
	score += float64(row.Tackles) * weightTackle
	score += float64(row.ChancesCreated) * weightChanceCreated
	score += float64(row.KeyPasses) * weightKeyPass
	score += float64(row.ShotsOnGoal) * weightShotOnGoal
	score += float64(row.PassesCompleted) * weightPassCompleted
	score -= float64(row.RedCards) * penaltyRedCard
	score -= float64(row.YellowCards) * penaltyYellowCard
	score -= float64(row.OwnGoals) * penaltyOwnGoal
	score -= float64(row.GoalsConceded) * penaltyGoalConceded

	return clampRating(score)
}

func explicitRating(row matchdata.PlayerStatRow) (float64, bool) {
	raw, ok := lookupField(row.Extra, ratingKeys)
	if !ok {
		return 0, false
	}
	value, ok := asFloat64(raw)
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func clampRating(value float64) float64 {
	if value < ratingFloor {
		value = ratingFloor
	}
	if value > ratingCeiling {
		value = ratingCeiling
	}
	return math.Round(value*10) / 10
}
