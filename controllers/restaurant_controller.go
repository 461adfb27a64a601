package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// RestaurantController serves the public browse surface: restaurants,
// categories, products and combos.
type RestaurantController struct {
	RestRepo    *repository.RestaurantRepository
	CatalogRepo *repository.CatalogRepository
}

func NewRestaurantController(restRepo *repository.RestaurantRepository, catalogRepo *repository.CatalogRepository) *RestaurantController {
	return &RestaurantController{RestRepo: restRepo, CatalogRepo: catalogRepo}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.RestRepo.ListActive()
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (h *RestaurantController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.RestRepo.Get(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /categories
func (h *RestaurantController) Categories(c *gin.Context) {
	out, err := h.CatalogRepo.ListCategories(true)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /products?category=3
func (h *RestaurantController) Products(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid category")
			return
		}
		v := uint(id)
		categoryID = &v
	}
	out, err := h.CatalogRepo.ListProducts(categoryID, true)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /products/:id
func (h *RestaurantController) Product(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.CatalogRepo.GetProduct(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /combos
func (h *RestaurantController) Combos(c *gin.Context) {
	out, err := h.CatalogRepo.ListCombos(true)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /combos/:id
func (h *RestaurantController) Combo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.CatalogRepo.GetCombo(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}
