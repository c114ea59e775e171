package controllers

import (
	"errors"
	"strconv"

	"fundamind/backend/config"
	"fundamind/backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminController carries the content-management endpoints. Routes mount it
// behind the admin middleware, so handlers trust the token scope.
type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

func (ac *AdminController) CreateQuest(c *fiber.Ctx) error {
	var quest models.Quest
	if err := c.BodyParser(&quest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if quest.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	if err := ac.DB.Create(&quest).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create quest",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Quest created",
		"quest":   quest,
	})
}

func (ac *AdminController) AddChapter(c *fiber.Ctx) error {
	questID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid quest ID",
		})
	}

	var quest models.Quest
	if err := ac.DB.First(&quest, questID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Quest not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	var chapter models.QuestChapter
	if err := c.BodyParser(&chapter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	chapter.QuestID = quest.ID

	if err := ac.DB.Create(&chapter).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create chapter",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Chapter created",
		"chapter": chapter,
	})
}

func (ac *AdminController) AddQuestion(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chapter ID",
		})
	}

	var chapter models.QuestChapter
	if err := ac.DB.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chapter not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	var question models.QuestQuestion
	if err := c.BodyParser(&question); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if question.CorrectAnswer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Correct answer is required",
		})
	}
	question.ChapterID = chapter.ID

	if err := ac.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create question",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Question created",
		"question": question,
	})
}

func (ac *AdminController) CreateShopItem(c *fiber.Ctx) error {
	var item models.ShopItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if item.Name == "" || item.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive price are required",
		})
	}

	if err := ac.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create shop item",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Item created",
		"item":    item,
	})
}
