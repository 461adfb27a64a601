package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc       *services.OrderService
	ReviewSvc *services.ReviewService
}

func NewOrderController(svc *services.OrderService, reviewSvc *services.ReviewService) *OrderController {
	return &OrderController{Svc: svc, ReviewSvc: reviewSvc}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateFromCart(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	if err := h.Svc.Cancel(utils.CurrentUserID(c), id, req.Reason); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

// POST /orders/:id/reorder
func (h *OrderController) Reorder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cart, skipped, err := h.Svc.Reorder(utils.CurrentUserID(c), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "skippedItems": skipped})
}

// POST /orders/:id/review
func (h *OrderController) Review(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.CreateReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rev, err := h.ReviewSvc.Create(utils.CurrentUserID(c), id, &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, rev)
}
