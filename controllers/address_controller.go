package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(repo *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: repo}
}

type addressIn struct {
	Label     string  `json:"label"`
	Street    string  `json:"street" binding:"required"`
	City      string  `json:"city" binding:"required"`
	Reference string  `json:"reference"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	out, err := h.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	var req addressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := entity.CustomerAddress{
		UserID: utils.CurrentUserID(c),
		Label:  req.Label, Street: req.Street, City: req.City,
		Reference: req.Reference, Latitude: req.Latitude, Longitude: req.Longitude,
	}
	if err := h.Repo.Create(&a); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, a)
}

// PATCH /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.Repo.GetForUser(utils.CurrentUserID(c), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	var req addressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a.Label, a.Street, a.City = req.Label, req.Street, req.City
	a.Reference, a.Latitude, a.Longitude = req.Reference, req.Latitude, req.Longitude
	if err := h.Repo.Save(a); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
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

// POST /addresses/:id/default
func (h *AddressController) SetDefault(c *gin.Context) {
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
