package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cart, err := h.Svc.GetOrCreate(uid)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	summary, err := h.Svc.Summary(cart)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "summary": summary})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /cart/items
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
		Qty    int  `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), body.ItemID, body.Qty); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), body.ItemID); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// GET /cart/validate
func (h *CartController) Validate(c *gin.Context) {
	cart, err := h.Svc.GetOrCreate(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	v, err := h.Svc.Validate(cart)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, v)
}

// PUT /cart/service-type
func (h *CartController) SetServiceType(c *gin.Context) {
	var req services.ServiceTypeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.SetServiceType(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	summary, err := h.Svc.Summary(cart)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "summary": summary})
}

// PUT /cart/address
func (h *CartController) SetDeliveryAddress(c *gin.Context) {
	var req struct {
		AddressID uint `json:"addressId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.SetDeliveryAddress(c.Request.Context(), utils.CurrentUserID(c), req.AddressID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	summary, err := h.Svc.Summary(cart)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "summary": summary})
}

// POST /cart/promo
func (h *CartController) ApplyPromo(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ApplyPromo(utils.CurrentUserID(c), req.Code); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"applied": true})
}

// DELETE /cart/promo
func (h *CartController) RemovePromo(c *gin.Context) {
	if err := h.Svc.RemovePromo(utils.CurrentUserID(c)); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
