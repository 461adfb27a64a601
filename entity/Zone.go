package entity

// Pricing/service region. Price lists and delivery fees differ per zone.
type Zone string

const (
	ZoneCapital  Zone = "capital"
	ZoneInterior Zone = "interior"
)

type ServiceType string

const (
	ServicePickup   ServiceType = "pickup"
	ServiceDelivery ServiceType = "delivery"
)

func (z Zone) Valid() bool {
	return z == ZoneCapital || z == ZoneInterior
}

func (s ServiceType) Valid() bool {
	return s == ServicePickup || s == ServiceDelivery
}
