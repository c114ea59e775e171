package controllers

import (
	"fundamind/backend/config"
	"fundamind/backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLeaderboardController(db *gorm.DB, cfg *config.Config) *LeaderboardController {
	return &LeaderboardController{DB: db, Cfg: cfg}
}

func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	var users []models.User
	if err := lc.DB.Order("level desc, xp desc").Limit(50).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	leaderboard := make([]models.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		leaderboard = append(leaderboard, models.LeaderboardEntry{
			Rank:     i + 1,
			ID:       user.ID,
			Username: user.Username,
			Avatar:   avatarFile(user.Avatar),
			Level:    user.Level,
			XP:       user.XP,
		})
	}

	return c.JSON(fiber.Map{
		"leaderboard": leaderboard,
	})
}
