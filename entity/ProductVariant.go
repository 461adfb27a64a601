package entity

import (
	"gorm.io/gorm"
)

// Size/preparation variant of a product. Prices are per zone, in centavos.
type ProductVariant struct {
	gorm.Model
	ProductID uint    `gorm:"index" json:"productId"`
	Product   Product `json:"-"`

	Name          string `gorm:"not null" json:"name"`
	PriceCapital  int64  `json:"priceCapital"`
	PriceInterior int64  `json:"priceInterior"`
	Default       bool   `json:"default"`
}

func (v *ProductVariant) PriceFor(zone Zone) int64 {
	if zone == ZoneInterior {
		return v.PriceInterior
	}
	return v.PriceCapital
}
