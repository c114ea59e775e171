package models

import "gorm.io/gorm"

type BossQuest struct {
	gorm.Model
	QuestID         uint
	Name            string
	Description     string
	ChapterStart    int
	ChapterEnd      int
	XPReward        int
	CoinReward      int
	BackgroundImage string
	BossImage       string
	Questions       []BossQuestion `gorm:"foreignKey:BossID"`
}

type BossQuestion struct {
	gorm.Model
	BossID        uint
	Prompt        string
	OptionA       *string
	OptionB       *string
	OptionC       *string
	OptionD       *string
	CorrectAnswer string
	Hint          string
}

// BossResult is one fight outcome, append-only. "Already defeated" is derived
// from the most recent row, never stored as a flag.
type BossResult struct {
	gorm.Model
	UserID         uint `gorm:"index"`
	BossID         uint `gorm:"index"`
	CorrectCount   int
	TotalQuestions int
	XPEarned       int
	CoinEarned     int
}
