package game

import "math"

// MinChapterXP is granted for any graded chapter run, however low the score.
const MinChapterXP = 20

type Rewards struct {
	XP   int
	Coin int
}

// CalculateRewards scales a chapter's base rewards by the share of correct
// answers. XP never drops below MinChapterXP; coins have no floor. Replays
// earn half, applied after the floor.
func CalculateRewards(baseXP, baseCoin, correctCount, totalQuestions int, isReplay bool) Rewards {
	percentage := float64(correctCount) / math.Max(1, float64(totalQuestions))

	xp := int(math.Round(float64(baseXP) * percentage))
	if xp < MinChapterXP {
		xp = MinChapterXP
	}
	coin := int(math.Floor(float64(baseCoin) * percentage))

	if isReplay {
		xp = int(math.Floor(float64(xp) * 0.5))
		coin = int(math.Floor(float64(coin) * 0.5))
	}

	return Rewards{XP: xp, Coin: coin}
}

// ChallengeRewards converts a daily-challenge result into score and rewards:
// 10 points per correct answer, XP equal to the score, half as many coins.
func ChallengeRewards(correctCount int) (score, xp, coin int) {
	score = correctCount * 10
	return score, score, score / 2
}
