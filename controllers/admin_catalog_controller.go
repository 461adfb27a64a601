package controllers

import (
	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
)

// Catalog management. Simple row CRUD goes straight through gorm; anything
// with business rules lives in the services layer.

// ---------------- Categories ----------------

type categoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

// GET /admin/categories
func (h *AdminController) ListCategories(c *gin.Context) {
	var out []entity.Category
	if err := h.DB.Order("sort_order ASC, id ASC").Find(&out).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/categories
func (h *AdminController) CreateCategory(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{Name: req.Name, SortOrder: req.SortOrder, Active: true}
	if req.Active != nil {
		cat.Active = *req.Active
	}
	if err := h.DB.Create(&cat).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/categories/:id
func (h *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cat entity.Category
	if err := h.DB.First(&cat, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat.Name, cat.SortOrder = req.Name, req.SortOrder
	if req.Active != nil {
		cat.Active = *req.Active
	}
	if err := h.DB.Save(&cat).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (h *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.Category{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Products ----------------

type productIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Available   *bool  `json:"available"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

// POST /admin/products
func (h *AdminController) CreateProduct(c *gin.Context) {
	var req productIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p := entity.Product{
		Name: req.Name, Description: req.Description, Picture: req.Picture,
		Available: true, CategoryID: req.CategoryID,
	}
	if req.Available != nil {
		p.Available = *req.Available
	}
	if err := h.DB.Create(&p).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /admin/products/:id
func (h *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var p entity.Product
	if err := h.DB.First(&p, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req productIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p.Name, p.Description, p.Picture, p.CategoryID = req.Name, req.Description, req.Picture, req.CategoryID
	if req.Available != nil {
		p.Available = *req.Available
	}
	if err := h.DB.Save(&p).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id
func (h *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.Product{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Variants ----------------

type variantIn struct {
	Name          string `json:"name" binding:"required"`
	PriceCapital  int64  `json:"priceCapital" binding:"required,min=1"`
	PriceInterior int64  `json:"priceInterior" binding:"required,min=1"`
	Default       bool   `json:"default"`
}

// POST /admin/products/:id/variants
func (h *AdminController) CreateVariant(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var p entity.Product
	if err := h.DB.First(&p, productID).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req variantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v := entity.ProductVariant{
		ProductID: productID, Name: req.Name,
		PriceCapital: req.PriceCapital, PriceInterior: req.PriceInterior,
		Default: req.Default,
	}
	if err := h.DB.Create(&v).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, v)
}

// PATCH /admin/variants/:id
func (h *AdminController) UpdateVariant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var v entity.ProductVariant
	if err := h.DB.First(&v, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req variantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v.Name, v.PriceCapital, v.PriceInterior, v.Default = req.Name, req.PriceCapital, req.PriceInterior, req.Default
	if err := h.DB.Save(&v).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /admin/variants/:id
func (h *AdminController) DeleteVariant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.ProductVariant{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Options ----------------

type optionIn struct {
	Name     string `json:"name" binding:"required"`
	Required bool   `json:"required"`
	MaxPicks int    `json:"maxPicks"`
}

// POST /admin/options
func (h *AdminController) CreateOption(c *gin.Context) {
	var req optionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o := entity.Option{Name: req.Name, Required: req.Required, MaxPicks: req.MaxPicks}
	if err := h.DB.Create(&o).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, o)
}

// PATCH /admin/options/:id
func (h *AdminController) UpdateOption(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var o entity.Option
	if err := h.DB.First(&o, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req optionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o.Name, o.Required, o.MaxPicks = req.Name, req.Required, req.MaxPicks
	if err := h.DB.Save(&o).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /admin/options/:id
func (h *AdminController) DeleteOption(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.Option{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/options/:id/values
func (h *AdminController) CreateOptionValue(c *gin.Context) {
	optionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var o entity.Option
	if err := h.DB.First(&o, optionID).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req struct {
		Name            string `json:"name" binding:"required"`
		PriceAdjustment int64  `json:"priceAdjustment"`
		Available       *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v := entity.OptionValue{OptionID: optionID, Name: req.Name, PriceAdjustment: req.PriceAdjustment, Available: true}
	if req.Available != nil {
		v.Available = *req.Available
	}
	if err := h.DB.Create(&v).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, v)
}

// PATCH /admin/option-values/:id
func (h *AdminController) UpdateOptionValue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var v entity.OptionValue
	if err := h.DB.First(&v, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req struct {
		Name            string `json:"name" binding:"required"`
		PriceAdjustment int64  `json:"priceAdjustment"`
		Available       *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v.Name, v.PriceAdjustment = req.Name, req.PriceAdjustment
	if req.Available != nil {
		v.Available = *req.Available
	}
	if err := h.DB.Save(&v).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /admin/option-values/:id
func (h *AdminController) DeleteOptionValue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.OptionValue{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/products/:id/options — attach an option group to a product.
func (h *AdminController) AttachOption(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		OptionID  uint `json:"optionId" binding:"required"`
		SortOrder int  `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	var p entity.Product
	if err := h.DB.First(&p, productID).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var o entity.Option
	if err := h.DB.First(&o, req.OptionID).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	po := entity.ProductOption{ProductID: productID, OptionID: req.OptionID, SortOrder: req.SortOrder}
	if err := h.DB.Save(&po).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, po)
}

// DELETE /admin/products/:id/options/:optionId
func (h *AdminController) DetachOption(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	optionID, ok := pathID(c, "optionId")
	if !ok {
		return
	}
	err := h.DB.Where("product_id = ? AND option_id = ?", productID, optionID).
		Delete(&entity.ProductOption{}).Error
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Combos ----------------

type comboIn struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Picture       string `json:"picture"`
	Available     *bool  `json:"available"`
	PriceCapital  int64  `json:"priceCapital" binding:"required,min=1"`
	PriceInterior int64  `json:"priceInterior" binding:"required,min=1"`
}

// POST /admin/combos
func (h *AdminController) CreateCombo(c *gin.Context) {
	var req comboIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cb := entity.Combo{
		Name: req.Name, Description: req.Description, Picture: req.Picture,
		Available: true, PriceCapital: req.PriceCapital, PriceInterior: req.PriceInterior,
	}
	if req.Available != nil {
		cb.Available = *req.Available
	}
	if err := h.DB.Create(&cb).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, cb)
}

// PATCH /admin/combos/:id
func (h *AdminController) UpdateCombo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cb entity.Combo
	if err := h.DB.First(&cb, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req comboIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cb.Name, cb.Description, cb.Picture = req.Name, req.Description, req.Picture
	cb.PriceCapital, cb.PriceInterior = req.PriceCapital, req.PriceInterior
	if req.Available != nil {
		cb.Available = *req.Available
	}
	if err := h.DB.Save(&cb).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, cb)
}

// DELETE /admin/combos/:id
func (h *AdminController) DeleteCombo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.Combo{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/combos/:id/slots
func (h *AdminController) CreateComboSlot(c *gin.Context) {
	comboID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cb entity.Combo
	if err := h.DB.First(&cb, comboID).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req struct {
		Name      string `json:"name" binding:"required"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	slot := entity.ComboSlot{ComboID: comboID, Name: req.Name, SortOrder: req.SortOrder}
	if err := h.DB.Create(&slot).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, slot)
}

// DELETE /admin/combo-slots/:id
func (h *AdminController) DeleteComboSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.ComboSlot{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/combo-slots/:id/items
func (h *AdminController) CreateComboSlotItem(c *gin.Context) {
	slotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var slot entity.ComboSlot
	if err := h.DB.First(&slot, slotID).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req struct {
		ProductID  uint  `json:"productId" binding:"required"`
		ExtraPrice int64 `json:"extraPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	var p entity.Product
	if err := h.DB.First(&p, req.ProductID).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	item := entity.ComboSlotItem{ComboSlotID: slotID, ProductID: req.ProductID, ExtraPrice: req.ExtraPrice}
	if err := h.DB.Create(&item).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /admin/combo-slot-items/:id
func (h *AdminController) DeleteComboSlotItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.ComboSlotItem{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
