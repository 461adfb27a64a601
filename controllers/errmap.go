package controllers

import (
	"errors"

	"backend/pkg/logger"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// mapServiceError translates service errors into the API's HTTP vocabulary:
// domain failures are 422 with a machine-readable error_code, ownership
// problems 403, lookups 404, everything unexpected a logged 500.
func mapServiceError(c *gin.Context, err error) {
	var dz *services.DeliveryZoneError
	if errors.As(err, &dz) {
		resp.Unprocessable(c, "address_outside_delivery_zone", "address is outside our delivery zones", gin.H{
			"lat":                     dz.Lat,
			"lng":                     dz.Lng,
			"nearbyPickupRestaurants": dz.NearbyPickup,
		})
		return
	}
	var ci *services.CartInvalidError
	if errors.As(err, &ci) {
		resp.Unprocessable(c, "cart_invalid", "cart cannot be checked out", gin.H{"messages": ci.Messages})
		return
	}

	switch {
	case errors.Is(err, services.ErrCartEmpty):
		resp.Unprocessable(c, "cart_empty", err.Error(), nil)
	case errors.Is(err, services.ErrCartConflictRestaurant):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Unprocessable(c, "invalid_status_transition", err.Error(), nil)
	case errors.Is(err, services.ErrInsufficientPoints):
		resp.Unprocessable(c, "insufficient_points", err.Error(), nil)
	case errors.Is(err, services.ErrPromoNotUsable):
		resp.Unprocessable(c, "promotion_not_applicable", err.Error(), nil)
	case errors.Is(err, services.ErrReviewNotAllowed):
		resp.Unprocessable(c, "review_not_allowed", err.Error(), nil)
	case errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidItemConfig),
		errors.Is(err, services.ErrDeliveryNeedsAddress):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrWalletNotConfigured):
		resp.Unprocessable(c, "wallet_not_configured", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		logger.Error(c, "unhandled service error", err)
		resp.ServerError(c)
	}
}
