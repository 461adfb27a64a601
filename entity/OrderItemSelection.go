package entity

import (
	"gorm.io/gorm"
)

type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	OptionID      uint   `json:"optionId"`
	OptionValueID uint   `json:"optionValueId"`
	ValueName     string `json:"valueName"`
	PriceDelta    int64  `json:"priceDelta"`
}
