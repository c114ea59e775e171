package utils

import (
	"fundamind/backend/config"
	"fundamind/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs AutoMigrate for every model. Tests call it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Quest{},
		&models.QuestChapter{},
		&models.QuestQuestion{},
		&models.UserAnswer{},
		&models.UserChapterProgress{},
		&models.ChallengeScore{},
		&models.BossQuest{},
		&models.BossQuestion{},
		&models.BossResult{},
		&models.ShopItem{},
		&models.UserItem{},
	)
}
