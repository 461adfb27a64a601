package entity

import (
	"gorm.io/gorm"
)

type ComboSlotItem struct {
	gorm.Model
	ComboSlotID uint      `gorm:"index" json:"comboSlotId"`
	ComboSlot   ComboSlot `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	// Surcharge over the combo base price when this product is picked.
	ExtraPrice int64 `json:"extraPrice"`
}
