package game

// LevelProgress is the outcome of applying XP to a user's ledger.
type LevelProgress struct {
	NewXP        int
	NewLevel     int
	NewXPNext    int
	LeveledUp    bool
	LevelsGained int
}

// ApplyXP adds xpAmount to the ledger and resolves level-ups one threshold at
// a time. The threshold is recomputed after every level gained, so a single
// large award can advance several levels. Afterwards 0 <= xp < threshold
// always holds.
func ApplyXP(xp, level, xpNext, xpAmount int) LevelProgress {
	xp += xpAmount
	originalLevel := level

	for xp >= xpNext {
		xp -= xpNext
		level++
		xpNext = XPForNextLevel(level)
	}

	return LevelProgress{
		NewXP:        xp,
		NewLevel:     level,
		NewXPNext:    xpNext,
		LeveledUp:    level > originalLevel,
		LevelsGained: level - originalLevel,
	}
}
