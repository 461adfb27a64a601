package entity

import (
	"time"

	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	ServiceType ServiceType `gorm:"size:20;not null;default:pickup" json:"serviceType"`
	Zone        Zone        `gorm:"size:20;not null;default:capital" json:"zone"`

	DeliveryAddressID *uint            `json:"deliveryAddressId,omitempty"`
	DeliveryAddress   *CustomerAddress `json:"-"`

	PromotionID *uint      `json:"promotionId,omitempty"`
	Promotion   *Promotion `json:"-"`

	ExpiresAt time.Time `json:"expiresAt"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (c *Cart) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
