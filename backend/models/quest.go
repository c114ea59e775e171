package models

import (
	"time"

	"gorm.io/gorm"
)

type Quest struct {
	gorm.Model
	Title       string
	Description string
	Category    string `gorm:"default:story"` // story, challenge, boss_battle
	XPReward    int
	CoinReward  int
	Icon        string
	Available   bool `gorm:"default:true"`
	Chapters    []QuestChapter
}

type QuestChapter struct {
	gorm.Model
	QuestID     uint
	Number      int
	Title       string
	Description string
	XPReward    int
	CoinReward  int
	Questions   []QuestQuestion `gorm:"foreignKey:ChapterID"`
}

// QuestQuestion is a multiple-choice question. The four options are explicit
// nullable columns so an absent option stays distinguishable from an empty one.
type QuestQuestion struct {
	gorm.Model
	ChapterID     uint
	Prompt        string
	OptionA       *string
	OptionB       *string
	OptionC       *string
	OptionD       *string
	CorrectAnswer string // option label: a, b, c or d
	Hint          string
	MinLevel      int `gorm:"default:1"`
}

// UserAnswer is one submitted answer, append-only.
type UserAnswer struct {
	gorm.Model
	UserID     uint `gorm:"index"`
	ChapterID  uint
	QuestionID uint
	Answer     string
}

// UserChapterProgress keys on (user, chapter). First completion is permanent:
// replays only touch Score and the replay accumulators.
type UserChapterProgress struct {
	gorm.Model
	UserID           uint `gorm:"uniqueIndex:idx_user_chapter"`
	ChapterID        uint `gorm:"uniqueIndex:idx_user_chapter"`
	QuestID          uint
	Score            int
	Completed        bool `gorm:"default:false"`
	XPEarned         int
	CoinEarned       int
	XPReplayEarned   int `gorm:"default:0"`
	CoinReplayEarned int `gorm:"default:0"`
	CompletedAt      *time.Time
}

// ChallengeScore is one daily-challenge outcome, append-only.
type ChallengeScore struct {
	gorm.Model
	UserID uint `gorm:"index"`
	Score  int
}
