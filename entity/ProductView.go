package entity

import (
	"gorm.io/gorm"
)

type ProductView struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	ItemType ItemType `gorm:"size:20" json:"itemType"`
	ItemID   uint     `json:"itemId"`
}
