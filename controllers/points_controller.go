package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PointsController struct{ Svc *services.PointsService }

func NewPointsController(s *services.PointsService) *PointsController {
	return &PointsController{Svc: s}
}

// GET /points
func (h *PointsController) Balance(c *gin.Context) {
	balance, err := h.Svc.Balance(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"balance": balance})
}

// GET /points/history
func (h *PointsController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.History(utils.CurrentUserID(c), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /rewards
func (h *PointsController) Rewards(c *gin.Context) {
	out, err := h.Svc.ListRewards()
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /rewards/:id/redeem
func (h *PointsController) RedeemReward(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	reward, err := h.Svc.RedeemReward(utils.CurrentUserID(c), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"reward": reward})
}
