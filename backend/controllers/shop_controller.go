package controllers

import (
	"errors"
	"fmt"

	"fundamind/backend/config"
	"fundamind/backend/models"
	"fundamind/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShopController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewShopController(db *gorm.DB, cfg *config.Config) *ShopController {
	return &ShopController{DB: db, Cfg: cfg}
}

func (sc *ShopController) GetShopItems(c *fiber.Ctx) error {
	var items []models.ShopItem
	if err := sc.DB.Where("available = ?", true).Order("min_level asc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	itemList := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		itemList = append(itemList, fiber.Map{
			"id":          item.ID,
			"name":        item.Name,
			"type":        item.Type,
			"description": item.Description,
			"price":       item.Price,
			"min_level":   item.MinLevel,
			"icon":        item.Icon,
			"consumable":  item.Consumable,
		})
	}

	// Viewer context when a valid token is present; the shop itself is public.
	userCoin := 0
	userLevel := 1
	if userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg); err == nil {
		var user models.User
		if err := sc.DB.First(&user, userID).Error; err == nil {
			userCoin = user.Coin
			userLevel = user.Level
		}
	}

	return c.JSON(fiber.Map{
		"items":      itemList,
		"user_coin":  userCoin,
		"user_level": userLevel,
	})
}

type BuyItemInput struct {
	ItemID uint `json:"item_id" validate:"required"`
}

// BuyItem debits coins and adds the item to the inventory in one transaction.
// Both the level gate and the balance check happen inside it, so a rejected
// purchase leaves no partial effect.
func (sc *ShopController) BuyItem(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input BuyItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	var item models.ShopItem
	if err := sc.DB.First(&item, input.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	var newBalance int
	var gateErr error

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if user.Level < item.MinLevel {
			gateErr = fmt.Errorf("level %d required to buy %s", item.MinLevel, item.Name)
			return gateErr
		}
		if user.Coin < item.Price {
			gateErr = fmt.Errorf("not enough coins to buy %s, need %d", item.Name, item.Price)
			return gateErr
		}

		user.Coin -= item.Price
		newBalance = user.Coin
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		var owned models.UserItem
		err := tx.Where("user_id = ? AND item_id = ?", userID, item.ID).First(&owned).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.UserItem{
				UserID:   userID,
				ItemID:   item.ID,
				Quantity: 1,
			}).Error
		}
		if err != nil {
			return err
		}

		owned.Quantity++
		return tx.Save(&owned).Error
	})
	if gateErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": gateErr.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete purchase",
		})
	}

	return c.JSON(fiber.Map{
		"message":     fmt.Sprintf("Bought %s!", item.Name),
		"new_balance": newBalance,
	})
}

func (sc *ShopController) GetInventory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var items []models.UserItem
	if err := sc.DB.Preload("Item").
		Where("user_id = ? AND quantity > 0", userID).Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	inventory := make([]fiber.Map, 0, len(items))
	for _, ui := range items {
		inventory = append(inventory, fiber.Map{
			"id":          ui.Item.ID,
			"name":        ui.Item.Name,
			"type":        ui.Item.Type,
			"description": ui.Item.Description,
			"icon":        ui.Item.Icon,
			"consumable":  ui.Item.Consumable,
			"quantity":    ui.Quantity,
		})
	}

	return c.JSON(fiber.Map{
		"inventory": inventory,
	})
}
