package entity

import (
	"gorm.io/gorm"
)

type Reward struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	PointsCost  int    `gorm:"not null" json:"pointsCost"`
	Active      bool   `gorm:"not null" json:"active"`
}
