package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username          string `gorm:"unique;not null"`
	Password          string `gorm:"not null"` // bcrypt hash
	Avatar            string `gorm:"default:Ellipse_1"`
	Bio               string
	Level             int `gorm:"default:1"`
	XP                int `gorm:"default:0"`
	XPNext            int `gorm:"default:100"`
	Coin              int `gorm:"default:0"`
	LastChallengeDate *time.Time
}

type Admin struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}
