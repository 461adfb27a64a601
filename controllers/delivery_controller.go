package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct{ Svc *services.DeliveryService }

func NewDeliveryController(s *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// POST /delivery/validate
func (h *DeliveryController) Validate(c *gin.Context) {
	var req struct {
		Lat *float64 `json:"lat" binding:"required"`
		Lng *float64 `json:"lng" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.ValidateCoordinates(c.Request.Context(), *req.Lat, *req.Lng)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}
