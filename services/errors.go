package services

import (
	"errors"
	"fmt"
)

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrCartEmpty              = errors.New("cart is empty")
	ErrCartConflictRestaurant = errors.New("cart has another restaurant")
	ErrItemUnavailable        = errors.New("item unavailable")
	ErrInvalidItemConfig      = errors.New("invalid item configuration")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrInsufficientPoints     = errors.New("insufficient points")
	ErrPromoNotUsable         = errors.New("promotion not applicable")
	ErrReviewNotAllowed       = errors.New("order cannot be reviewed")
	ErrForbidden              = errors.New("forbidden")
	ErrDeliveryNeedsAddress   = errors.New("delivery requires an address")
)

// CartInvalidError carries the per-item messages from cart validation.
type CartInvalidError struct {
	Messages []string
}

func (e *CartInvalidError) Error() string {
	return fmt.Sprintf("cart invalid: %d problem(s)", len(e.Messages))
}

// DeliveryZoneError signals that an address falls outside every delivery
// polygon. It carries the coordinates and pickup alternatives so the handler
// can return them in the 422 payload.
type DeliveryZoneError struct {
	Lat          float64
	Lng          float64
	NearbyPickup []NearbyRestaurant
}

func (e *DeliveryZoneError) Error() string {
	return fmt.Sprintf("address (%f, %f) outside delivery zones", e.Lat, e.Lng)
}
