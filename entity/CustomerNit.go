package entity

import (
	"gorm.io/gorm"
)

// Guatemalan tax identification number, stored per customer for invoicing.
type CustomerNit struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Nit       string `gorm:"size:20;not null" json:"nit"`
	Name      string `json:"name"`
	IsDefault bool   `gorm:"index" json:"isDefault"`
}
