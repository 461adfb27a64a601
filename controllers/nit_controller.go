package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type NitController struct{ Repo *repository.NitRepository }

func NewNitController(repo *repository.NitRepository) *NitController {
	return &NitController{Repo: repo}
}

// GET /nits
func (h *NitController) List(c *gin.Context) {
	out, err := h.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /nits
func (h *NitController) Create(c *gin.Context) {
	var req struct {
		Nit  string `json:"nit" binding:"required"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n := entity.CustomerNit{UserID: utils.CurrentUserID(c), Nit: req.Nit, Name: req.Name}
	if err := h.Repo.Create(&n); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, n)
}

// DELETE /nits/:id
func (h *NitController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Repo.Delete(utils.CurrentUserID(c), id); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /nits/:id/default
func (h *NitController) SetDefault(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Repo.SetDefault(utils.CurrentUserID(c), id); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"default": true})
}
