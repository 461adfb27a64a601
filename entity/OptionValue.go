package entity

import (
	"gorm.io/gorm"
)

type OptionValue struct {
	gorm.Model
	OptionID uint   `gorm:"index" json:"optionId"`
	Option   Option `json:"-"`

	Name            string `gorm:"not null" json:"name"`
	PriceAdjustment int64  `json:"priceAdjustment"`
	Available       bool   `gorm:"not null" json:"available"`
}
