package routes

import (
	"fundamind/backend/config"
	"fundamind/backend/controllers"
	"fundamind/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authController.Me)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Quest and chapter routes
	questsController := controllers.NewQuestsController(db, cfg)
	app.Get("/api/quests", authMiddleware, questsController.GetQuests)
	app.Get("/api/quests/:id", authMiddleware, questsController.GetQuestDetails)
	app.Get("/api/chapters/:id", authMiddleware, questsController.GetChapter)
	app.Post("/api/chapters/:id/submit", authMiddleware, questsController.SubmitChapter)

	// Daily challenge routes
	challengeController := controllers.NewChallengeController(db, cfg)
	app.Get("/api/challenge", authMiddleware, challengeController.GetChallenge)
	app.Post("/api/challenge/submit", authMiddleware, challengeController.SubmitChallenge)

	// Boss battle routes
	bossController := controllers.NewBossController(db, cfg)
	app.Get("/api/boss/:id", authMiddleware, bossController.GetBoss)
	app.Post("/api/boss/:id/submit", authMiddleware, bossController.SubmitBoss)

	// Shop and inventory routes
	shopController := controllers.NewShopController(db, cfg)
	app.Get("/api/shop", shopController.GetShopItems)
	app.Post("/api/shop/buy", authMiddleware, shopController.BuyItem)
	app.Get("/api/inventory", authMiddleware, shopController.GetInventory)

	// Leaderboard
	leaderboardController := controllers.NewLeaderboardController(db, cfg)
	app.Get("/api/leaderboard", leaderboardController.GetLeaderboard)

	// Admin content management
	adminController := controllers.NewAdminController(db, cfg)
	admin := app.Group("/api/admin", authMiddleware, middleware.AdminMiddleware(cfg))
	admin.Post("/quests", adminController.CreateQuest)
	admin.Post("/quests/:id/chapters", adminController.AddChapter)
	admin.Post("/chapters/:id/questions", adminController.AddQuestion)
	admin.Post("/shop/items", adminController.CreateShopItem)
}
