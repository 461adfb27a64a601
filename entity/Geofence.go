package entity

import (
	"gorm.io/gorm"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Delivery polygon for a restaurant. Vertices are stored as a JSON column so
// the polygon travels with the row; containment checks happen in Go.
type Geofence struct {
	gorm.Model
	RestaurantID uint       `gorm:"uniqueIndex" json:"restaurantId"`
	Vertices     []GeoPoint `gorm:"serializer:json" json:"vertices"`
}
