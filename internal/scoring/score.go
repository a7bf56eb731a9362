package scoring

import "math"

// ScorePercent converts a correct count into a 0-100 percentage using
// half-away-from-zero rounding, so 2/3 -> 67. A lesson with no questions
// scores zero; callers are expected to treat that case as "no content"
// before scoring.
func ScorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// XpAward converts a score percentage into the XP granted for one
// submission: round(scorePercent/100 * xpReward), same rounding rule as
// ScorePercent. One submission produces exactly one ledger entry.
func XpAward(scorePercent, xpReward int) int {
	if scorePercent <= 0 || xpReward <= 0 {
		return 0
	}
	return int(math.Round(float64(scorePercent) / 100 * float64(xpReward)))
}
