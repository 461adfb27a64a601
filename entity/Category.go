package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `gorm:"not null" json:"active"`

	Products []Product `json:"-"`
}
