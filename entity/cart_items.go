package entity

import (
	"gorm.io/gorm"
)

// A cart line references a product or a combo, never both.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID *uint    `json:"productId,omitempty"`
	Product   *Product `json:"-"`

	ComboID *uint  `json:"comboId,omitempty"`
	Combo   *Combo `json:"-"`

	VariantID *uint           `json:"variantId,omitempty"`
	Variant   *ProductVariant `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	Selections      []CartItemSelection      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
	ComboSelections []CartItemComboSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comboSelections"`
}

func (it *CartItem) IsCombo() bool { return it.ComboID != nil }
