package controllers

import (
	"errors"
	"math/rand"
	"strconv"

	"fundamind/backend/config"
	"fundamind/backend/game"
	"fundamind/backend/models"
	"fundamind/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BossController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewBossController(db *gorm.DB, cfg *config.Config) *BossController {
	return &BossController{DB: db, Cfg: cfg}
}

func (bc *BossController) GetBoss(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, bc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bossID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid boss ID",
		})
	}

	var boss models.BossQuest
	if err := bc.DB.First(&boss, bossID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Boss not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	// Defeated status is derived from the most recent attempt only: a loss
	// after a win drops the status until the user wins again.
	alreadyDefeated := false
	var lastResult models.BossResult
	if err := bc.DB.Where("user_id = ? AND boss_id = ?", userID, bossID).
		Order("created_at desc").First(&lastResult).Error; err == nil {
		alreadyDefeated = lastResult.CorrectCount == lastResult.TotalQuestions
	}

	var questions []models.BossQuestion
	if err := bc.DB.Where("boss_id = ?", bossID).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	questionList := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		questionList = append(questionList, fiber.Map{
			"id":       q.ID,
			"prompt":   q.Prompt,
			"option_a": q.OptionA,
			"option_b": q.OptionB,
			"option_c": q.OptionC,
			"option_d": q.OptionD,
		})
	}

	return c.JSON(fiber.Map{
		"boss": fiber.Map{
			"id":               boss.ID,
			"name":             boss.Name,
			"description":      boss.Description,
			"background_image": boss.BackgroundImage,
			"boss_image":       boss.BossImage,
			"xp_reward":        boss.XPReward,
			"coin_reward":      boss.CoinReward,
		},
		"questions":        questionList,
		"already_defeated": alreadyDefeated,
	})
}

// SubmitBoss grades a boss fight. Victory requires a flawless run; anything
// less earns nothing, but the attempt is recorded either way.
func (bc *BossController) SubmitBoss(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, bc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bossID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid boss ID",
		})
	}

	var input SubmitChallengeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Answers == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Answers are required",
		})
	}

	var boss models.BossQuest
	if err := bc.DB.First(&boss, bossID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Boss not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	var questions []models.BossQuestion
	if err := bc.DB.Where("boss_id = ?", bossID).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	correct := make(map[uint]string, len(questions))
	for _, q := range questions {
		correct[q.ID] = q.CorrectAnswer
	}

	answers := make([]game.Answer, 0, len(input.Answers))
	for _, a := range input.Answers {
		answers = append(answers, game.Answer{QuestionID: a.QuestionID, Answer: a.Answer})
	}

	graded := game.Grade(answers, game.NewAnswerKey(correct))
	totalQuestions := len(questions)
	isVictory := graded.CorrectCount == totalQuestions

	xpEarned := 0
	coinEarned := 0
	if isVictory {
		xpEarned = boss.XPReward
		coinEarned = boss.CoinReward
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if isVictory {
			var user models.User
			if err := tx.First(&user, userID).Error; err != nil {
				return err
			}

			progress := game.ApplyXP(user.XP, user.Level, user.XPNext, xpEarned)
			user.XP = progress.NewXP
			user.Level = progress.NewLevel
			user.XPNext = progress.NewXPNext
			user.Coin += coinEarned
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		return tx.Create(&models.BossResult{
			UserID:         userID,
			BossID:         uint(bossID),
			CorrectCount:   graded.CorrectCount,
			TotalQuestions: totalQuestions,
			XPEarned:       xpEarned,
			CoinEarned:     coinEarned,
		}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save boss result",
		})
	}

	return c.JSON(fiber.Map{
		"result": fiber.Map{
			"correct_count":   graded.CorrectCount,
			"total_questions": totalQuestions,
			"is_victory":      isVictory,
			"xp_earned":       xpEarned,
			"coin_earned":     coinEarned,
		},
	})
}
