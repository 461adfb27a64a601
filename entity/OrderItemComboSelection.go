package entity

import (
	"gorm.io/gorm"
)

// Snapshot of a combo slot pick at order time, so the order stays readable
// and reorderable after the catalog changes.
type OrderItemComboSelection struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	ComboSlotID uint   `json:"comboSlotId"`
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	PriceDelta  int64  `json:"priceDelta"`
}
