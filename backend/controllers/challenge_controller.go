package controllers

import (
	"errors"
	"math/rand"
	"time"

	"fundamind/backend/config"
	"fundamind/backend/game"
	"fundamind/backend/models"
	"fundamind/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ChallengeQuestionCount is how many questions a daily challenge draws.
const ChallengeQuestionCount = 10

// ChallengeTimeLimit is advertised to the client; the server does not enforce
// it on submission.
const ChallengeTimeLimit = 180

type ChallengeController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewChallengeController(db *gorm.DB, cfg *config.Config) *ChallengeController {
	return &ChallengeController{DB: db, Cfg: cfg}
}

// playedToday compares at calendar-date granularity, not a 24h window.
func playedToday(lastPlayed *time.Time, now time.Time) bool {
	if lastPlayed == nil {
		return false
	}
	return lastPlayed.UTC().Format("2006-01-02") == now.UTC().Format("2006-01-02")
}

func (cc *ChallengeController) GetChallenge(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var user models.User
	if err := cc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	if playedToday(user.LastChallengeDate, time.Now()) {
		return c.JSON(fiber.Map{
			"already_played": true,
			"message":        "You already finished today's challenge!",
		})
	}

	// Draw a wider pool gated by the user's level, then shuffle in-process so
	// the query stays portable across drivers.
	var questions []models.QuestQuestion
	if err := cc.DB.Where("min_level <= ?", user.Level).Limit(100).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > ChallengeQuestionCount {
		questions = questions[:ChallengeQuestionCount]
	}

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
		"already_played": false,
		"questions":      questionList,
		"time_limit":     ChallengeTimeLimit,
	})
}

type SubmitChallengeInput struct {
	Answers []SubmitAnswerInput `json:"answers"`
}

// SubmitChallenge grades a daily-challenge run. The calendar gate is checked
// before any grading: a second submission on the same date is rejected with
// no side effects.
func (cc *ChallengeController) SubmitChallenge(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
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

	var user models.User
	if err := cc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	now := time.Now()
	if playedToday(user.LastChallengeDate, now) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Challenge already played today",
		})
	}

	questionIDs := make([]uint, 0, len(input.Answers))
	for _, a := range input.Answers {
		questionIDs = append(questionIDs, a.QuestionID)
	}

	var questions []models.QuestQuestion
	if len(questionIDs) > 0 {
		if err := cc.DB.Where("id IN ?", questionIDs).Find(&questions).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not query database",
			})
		}
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
	score, xpEarned, coinEarned := game.ChallengeRewards(graded.CorrectCount)

	var progress game.LevelProgress

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		progress = game.ApplyXP(user.XP, user.Level, user.XPNext, xpEarned)
		user.XP = progress.NewXP
		user.Level = progress.NewLevel
		user.XPNext = progress.NewXPNext
		user.Coin += coinEarned
		user.LastChallengeDate = &now
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		return tx.Create(&models.ChallengeScore{
			UserID: userID,
			Score:  score,
		}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save challenge result",
		})
	}

	return c.JSON(fiber.Map{
		"result": fiber.Map{
			"score":           score,
			"correct_count":   graded.CorrectCount,
			"total_questions": len(input.Answers),
			"xp_earned":       xpEarned,
			"coin_earned":     coinEarned,
			"leveled_up":      progress.LeveledUp,
			"new_level":       progress.NewLevel,
		},
	})
}
