package entity

import (
	"time"

	"gorm.io/gorm"
)

// Immutable snapshot of a cart at checkout time. Only status and the status
// timestamps change after creation.
type Order struct {
	gorm.Model
	Number string `gorm:"uniqueIndex;size:36" json:"number"`

	Subtotal       int64 `json:"subtotal"`
	Discount       int64 `json:"discount"`
	PointsDiscount int64 `json:"pointsDiscount"`
	DeliveryFee    int64 `json:"deliveryFee"`
	Total          int64 `json:"total"`

	PointsRedeemed int `json:"pointsRedeemed"`
	PointsEarned   int `json:"pointsEarned"`

	ServiceType ServiceType `gorm:"size:20;not null" json:"serviceType"`
	Zone        Zone        `gorm:"size:20;not null" json:"zone"`

	// Address snapshot for delivery orders.
	DeliveryStreet string  `json:"deliveryStreet,omitempty"`
	DeliveryCity   string  `json:"deliveryCity,omitempty"`
	DeliveryLat    float64 `json:"deliveryLat,omitempty"`
	DeliveryLng    float64 `json:"deliveryLng,omitempty"`

	NitNumber string `json:"nitNumber,omitempty"`
	NitName   string `json:"nitName,omitempty"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	PromotionID *uint      `json:"promotionId,omitempty"`
	Promotion   *Promotion `json:"-"`

	OrderStatusID uint        `gorm:"index" json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	EstimatedReadyAt *time.Time `json:"estimatedReadyAt,omitempty"`
	ReadyAt          *time.Time `json:"readyAt,omitempty"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`

	CancelReason string `json:"cancelReason,omitempty"`

	OrderItems    []OrderItem          `json:"-"`
	StatusHistory []OrderStatusHistory `json:"-"`
	Review        *OrderReview         `gorm:"foreignKey:OrderID" json:"-"`
}
