package entity

import (
	"gorm.io/gorm"
)

type CustomerAddress struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Label     string  `json:"label"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	Reference string  `json:"reference"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// At most one default per user, enforced by AddressRepository.SetDefault.
	IsDefault bool `gorm:"index" json:"isDefault"`
}
