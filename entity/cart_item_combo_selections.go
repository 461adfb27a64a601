package entity

import (
	"gorm.io/gorm"
)

type CartItemComboSelection struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	ComboSlotID uint      `json:"comboSlotId"`
	ComboSlot   ComboSlot `json:"-"`
	ProductID   uint      `json:"productId"`
	Product     Product   `json:"-"`

	PriceDelta int64 `json:"priceDelta"`
}
