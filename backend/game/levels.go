// Package game holds the progression and grading rules: the level curve,
// reward formulas, answer grading and XP ledger math. Everything here is a
// pure function of its inputs; controllers persist the results.
package game

// XPForNextLevel returns the XP needed to advance from level to level+1.
// Level 1 -> 100 XP, level 2 -> 200 XP, and so on.
func XPForNextLevel(level int) int {
	return level * 100
}

// RankFromLevel maps a level to its display rank.
func RankFromLevel(level int) string {
	switch {
	case level >= 50:
		return "Grandmaster"
	case level >= 40:
		return "Master"
	case level >= 30:
		return "Diamond"
	case level >= 20:
		return "Platinum"
	case level >= 15:
		return "Gold"
	case level >= 10:
		return "Silver"
	case level >= 5:
		return "Bronze"
	default:
		return "Novice"
	}
}
