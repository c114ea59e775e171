package models

import "gorm.io/gorm"

type ShopItem struct {
	gorm.Model
	Name        string
	Type        string // booster, hint, skip
	Description string
	Price       int
	MinLevel    int `gorm:"default:1"`
	Icon        string
	Available   bool `gorm:"default:true"`
	Consumable  bool `gorm:"default:true"`
}

type UserItem struct {
	gorm.Model
	UserID   uint     `gorm:"uniqueIndex:idx_user_item"`
	ItemID   uint     `gorm:"uniqueIndex:idx_user_item"`
	Quantity int      `gorm:"default:0"`
	Item     ShopItem `gorm:"foreignKey:ItemID"`
}
