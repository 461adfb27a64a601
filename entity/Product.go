package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Available   bool   `gorm:"not null" json:"available"`

	CategoryID uint     `gorm:"index" json:"categoryId"`
	Category   Category `json:"-"`

	Variants []ProductVariant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variants"`
	Options  []Option         `gorm:"many2many:product_options;" json:"options"`
}
