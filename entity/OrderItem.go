package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	// Name at order time; the catalog row may change or disappear later.
	ItemName string `json:"itemName"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID *uint    `json:"productId,omitempty"`
	Product   *Product `json:"-"`

	ComboID *uint  `json:"comboId,omitempty"`
	Combo   *Combo `json:"-"`

	VariantID *uint           `json:"variantId,omitempty"`
	Variant   *ProductVariant `json:"-"`

	Selections      []OrderItemSelection      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
	ComboSelections []OrderItemComboSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comboSelections"`
}
