package entity

import (
	"gorm.io/gorm"
)

type Option struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Required bool   `json:"required"`
	MaxPicks int    `json:"maxPicks"`

	Values []OptionValue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"values"`

	Products []Product `gorm:"many2many:product_options;" json:"-"`
}
