package entity

import (
	"gorm.io/gorm"
)

// Append-only log of status transitions for an order.
type OrderStatusHistory struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	FromStatusID uint   `json:"fromStatusId"`
	ToStatusID   uint   `json:"toStatusId"`
	ChangedByID  uint   `json:"changedById"`
	Note         string `json:"note"`
}
