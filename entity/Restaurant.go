package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name      string  `gorm:"not null" json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zone      Zone    `gorm:"size:20;not null;default:capital" json:"zone"`
	Active    bool    `gorm:"not null" json:"active"`

	// Fee charged for delivery orders assigned to this restaurant, in centavos.
	DeliveryFee int64 `json:"deliveryFee"`

	// Zero-or-one delivery polygon. Restaurants without one are pickup only.
	Geofence *Geofence `gorm:"foreignKey:RestaurantID" json:"geofence,omitempty"`

	Orders []Order `json:"-"`
}
