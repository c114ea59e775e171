package controllers

import (
	"errors"
	"strconv"
	"time"

	"fundamind/backend/config"
	"fundamind/backend/game"
	"fundamind/backend/models"
	"fundamind/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuestsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewQuestsController(db *gorm.DB, cfg *config.Config) *QuestsController {
	return &QuestsController{DB: db, Cfg: cfg}
}

func (qc *QuestsController) GetQuests(c *fiber.Ctx) error {
	var quests []models.Quest
	if err := qc.DB.Where("available = ?", true).Order("id asc").Find(&quests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	result := make([]fiber.Map, 0, len(quests))
	for _, quest := range quests {
		result = append(result, fiber.Map{
			"id":          quest.ID,
			"title":       quest.Title,
			"description": quest.Description,
			"category":    quest.Category,
			"xp_reward":   quest.XPReward,
			"coin_reward": quest.CoinReward,
			"icon":        quest.Icon,
		})
	}

	return c.JSON(fiber.Map{
		"quests": result,
	})
}

func (qc *QuestsController) GetQuestDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, qc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	questID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid quest ID",
		})
	}

	var quest models.Quest
	if err := qc.DB.Preload("Chapters", func(db *gorm.DB) *gorm.DB {
		return db.Order("number asc")
	}).First(&quest, questID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Quest not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	chapterIDs := make([]uint, 0, len(quest.Chapters))
	for _, chapter := range quest.Chapters {
		chapterIDs = append(chapterIDs, chapter.ID)
	}

	var progresses []models.UserChapterProgress
	qc.DB.Where("user_id = ? AND chapter_id IN ?", userID, chapterIDs).Find(&progresses)

	progressMap := make(map[uint]models.UserChapterProgress, len(progresses))
	for _, p := range progresses {
		progressMap[p.ChapterID] = p
	}

	chapters := make([]fiber.Map, 0, len(quest.Chapters))
	for _, chapter := range quest.Chapters {
		entry := fiber.Map{
			"id":          chapter.ID,
			"number":      chapter.Number,
			"title":       chapter.Title,
			"description": chapter.Description,
			"xp_reward":   chapter.XPReward,
			"coin_reward": chapter.CoinReward,
			"progress":    nil,
		}
		if p, ok := progressMap[chapter.ID]; ok {
			entry["progress"] = fiber.Map{
				"score":     p.Score,
				"completed": p.Completed,
			}
		}
		chapters = append(chapters, entry)
	}

	return c.JSON(fiber.Map{
		"quest": fiber.Map{
			"id":          quest.ID,
			"title":       quest.Title,
			"description": quest.Description,
			"category":    quest.Category,
			"xp_reward":   quest.XPReward,
			"coin_reward": quest.CoinReward,
			"icon":        quest.Icon,
			"chapters":    chapters,
		},
	})
}

func (qc *QuestsController) GetChapter(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, qc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chapter ID",
		})
	}

	var chapter models.QuestChapter
	if err := qc.DB.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chapter not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	var questions []models.QuestQuestion
	qc.DB.Where("chapter_id = ?", chapterID).Order("id asc").Find(&questions)

	// Correct answers stay server-side.
	questionList := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		questionList = append(questionList, fiber.Map{
			"id":       q.ID,
			"prompt":   q.Prompt,
			"option_a": q.OptionA,
			"option_b": q.OptionB,
			"option_c": q.OptionC,
			"option_d": q.OptionD,
			"hint":     q.Hint,
		})
	}

	var progress models.UserChapterProgress
	completed := false
	var previousScore *int
	if err := qc.DB.Where("user_id = ? AND chapter_id = ?", userID, chapterID).First(&progress).Error; err == nil {
		completed = progress.Completed
		previousScore = &progress.Score
	}

	return c.JSON(fiber.Map{
		"chapter": fiber.Map{
			"id":          chapter.ID,
			"quest_id":    chapter.QuestID,
			"number":      chapter.Number,
			"title":       chapter.Title,
			"description": chapter.Description,
			"xp_reward":   chapter.XPReward,
			"coin_reward": chapter.CoinReward,
		},
		"questions":      questionList,
		"is_completed":   completed,
		"previous_score": previousScore,
	})
}

type SubmitAnswerInput struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

type SubmitChapterInput struct {
	Answers  []SubmitAnswerInput `json:"answers"`
	IsReplay bool                `json:"is_replay"`
}

// SubmitChapter grades a chapter run, pays out rewards and records the
// attempt. The answer rows, the progress upsert and the user ledger update
// are committed as one transaction.
func (qc *QuestsController) SubmitChapter(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, qc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chapter ID",
		})
	}

	var input SubmitChapterInput
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

	var chapter models.QuestChapter
	if err := qc.DB.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chapter not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	var questions []models.QuestQuestion
	if err := qc.DB.Where("chapter_id = ?", chapterID).Find(&questions).Error; err != nil {
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
	score := game.ChapterScore(graded.CorrectCount, totalQuestions)
	rewards := game.CalculateRewards(chapter.XPReward, chapter.CoinReward,
		graded.CorrectCount, totalQuestions, input.IsReplay)

	var progress game.LevelProgress

	err = qc.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		progress = game.ApplyXP(user.XP, user.Level, user.XPNext, rewards.XP)
		user.XP = progress.NewXP
		user.Level = progress.NewLevel
		user.XPNext = progress.NewXPNext
		user.Coin += rewards.Coin
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		for _, a := range graded.Answers {
			record := models.UserAnswer{
				UserID:     userID,
				ChapterID:  uint(chapterID),
				QuestionID: a.QuestionID,
				Answer:     a.Answer,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		return upsertChapterProgress(tx, userID, chapter, score, rewards, input.IsReplay)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save progress",
		})
	}

	return c.JSON(fiber.Map{
		"result": fiber.Map{
			"score":           score,
			"correct_count":   graded.CorrectCount,
			"total_questions": totalQuestions,
			"xp_earned":       rewards.XP,
			"coin_earned":     rewards.Coin,
			"leveled_up":      progress.LeveledUp,
			"new_level":       progress.NewLevel,
			"is_replay":       input.IsReplay,
		},
	})
}

// upsertChapterProgress keeps first-completion fields permanent. The first
// non-replay submission flips Completed and stores the original rewards;
// every later submission (replay, or a non-replay racing in after completion)
// updates the score and adds to the replay accumulators only.
func upsertChapterProgress(tx *gorm.DB, userID uint, chapter models.QuestChapter,
	score int, rewards game.Rewards, isReplay bool) error {

	var progress models.UserChapterProgress
	err := tx.Where("user_id = ? AND chapter_id = ?", userID, chapter.ID).First(&progress).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if isReplay {
			// Replay without a completion on record: nothing to accumulate.
			return nil
		}
		now := time.Now()
		progress = models.UserChapterProgress{
			UserID:      userID,
			ChapterID:   chapter.ID,
			QuestID:     chapter.QuestID,
			Score:       score,
			Completed:   true,
			XPEarned:    rewards.XP,
			CoinEarned:  rewards.Coin,
			CompletedAt: &now,
		}
		return tx.Create(&progress).Error
	}
	if err != nil {
		return err
	}

	progress.Score = score
	progress.XPReplayEarned += rewards.XP
	progress.CoinReplayEarned += rewards.Coin
	return tx.Save(&progress).Error
}
