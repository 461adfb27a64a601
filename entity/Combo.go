package entity

import (
	"gorm.io/gorm"
)

type Combo struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Available   bool   `gorm:"not null" json:"available"`

	PriceCapital  int64 `json:"priceCapital"`
	PriceInterior int64 `json:"priceInterior"`

	Slots []ComboSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slots"`
}

func (cb *Combo) PriceFor(zone Zone) int64 {
	if zone == ZoneInterior {
		return cb.PriceInterior
	}
	return cb.PriceCapital
}
