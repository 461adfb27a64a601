package entity

import (
	"gorm.io/gorm"
)

// One review per delivered/completed order. All four ratings are 1-5.
type OrderReview struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	FoodRating     int    `json:"foodRating"`
	ServiceRating  int    `json:"serviceRating"`
	DeliveryRating int    `json:"deliveryRating"`
	OverallRating  int    `json:"overallRating"`
	Comment        string `json:"comment"`
}
