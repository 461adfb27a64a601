package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: s}
}

type itemRef struct {
	ItemType entity.ItemType `json:"itemType" binding:"required,oneof=product combo"`
	ItemID   uint            `json:"itemId" binding:"required"`
}

// GET /favorites
func (h *FavoriteController) List(c *gin.Context) {
	out, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /favorites/toggle
func (h *FavoriteController) Toggle(c *gin.Context) {
	var req itemRef
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	favorited, err := h.Svc.Toggle(utils.CurrentUserID(c), req.ItemType, req.ItemID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"favorited": favorited})
}

// POST /views
func (h *FavoriteController) RecordView(c *gin.Context) {
	var req itemRef
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RecordView(utils.CurrentUserID(c), req.ItemType, req.ItemID); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"recorded": true})
}

// GET /views/recent
func (h *FavoriteController) RecentViews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	out, err := h.Svc.RecentViews(utils.CurrentUserID(c), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}
