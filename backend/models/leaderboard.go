package models

// LeaderboardEntry is a read model, not a table.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
}
