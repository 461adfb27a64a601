package controllers

import (
	"strconv"
	"time"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController backs the staff surface: catalog management, geofences,
// promotions, rewards, kitchen order actions and points maintenance.
type AdminController struct {
	DB        *gorm.DB
	RestRepo  *repository.RestaurantRepository
	PromoRepo *repository.PromotionRepository
	OrderRepo *repository.OrderRepository
	OrderSvc  *services.OrderService
	PointsSvc *services.PointsService
	Delivery  *services.DeliveryService
}

func NewAdminController(db *gorm.DB, restRepo *repository.RestaurantRepository,
	promoRepo *repository.PromotionRepository, orderRepo *repository.OrderRepository,
	orderSvc *services.OrderService, pointsSvc *services.PointsService,
	delivery *services.DeliveryService) *AdminController {
	return &AdminController{
		DB: db, RestRepo: restRepo, PromoRepo: promoRepo, OrderRepo: orderRepo,
		OrderSvc: orderSvc, PointsSvc: pointsSvc, Delivery: delivery,
	}
}

// ---------------- Restaurants ----------------

type restaurantIn struct {
	Name        string      `json:"name" binding:"required"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Zone        entity.Zone `json:"zone" binding:"required,oneof=capital interior"`
	Active      *bool       `json:"active"`
	DeliveryFee int64       `json:"deliveryFee"`
}

// POST /admin/restaurants
func (h *AdminController) CreateRestaurant(c *gin.Context) {
	var req restaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r := entity.Restaurant{
		Name: req.Name, Address: req.Address, Phone: req.Phone,
		Latitude: req.Latitude, Longitude: req.Longitude,
		Zone: req.Zone, Active: true, DeliveryFee: req.DeliveryFee,
	}
	if req.Active != nil {
		r.Active = *req.Active
	}
	if err := h.DB.Create(&r).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, r)
}

// PATCH /admin/restaurants/:id
func (h *AdminController) UpdateRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.RestRepo.Get(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	var req restaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r.Name, r.Address, r.Phone = req.Name, req.Address, req.Phone
	r.Latitude, r.Longitude, r.Zone = req.Latitude, req.Longitude, req.Zone
	r.DeliveryFee = req.DeliveryFee
	if req.Active != nil {
		r.Active = *req.Active
	}
	if err := h.DB.Save(r).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	h.Delivery.Invalidate(c.Request.Context())
	resp.OK(c, r)
}

// PUT /admin/restaurants/:id/geofence
func (h *AdminController) UpsertGeofence(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.RestRepo.Get(id); err != nil {
		mapServiceError(c, err)
		return
	}
	var req struct {
		Vertices []entity.GeoPoint `json:"vertices" binding:"required,min=3"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	g := entity.Geofence{RestaurantID: id, Vertices: req.Vertices}
	if err := h.RestRepo.UpsertGeofence(&g); err != nil {
		mapServiceError(c, err)
		return
	}
	h.Delivery.Invalidate(c.Request.Context())
	resp.OK(c, g)
}

// ---------------- Promotions ----------------

type promotionIn struct {
	Code     string              `json:"code" binding:"required"`
	Detail   string              `json:"detail"`
	Type     entity.DiscountType `json:"type" binding:"required,oneof=percent fixed"`
	Value    int64               `json:"value" binding:"required,min=1"`
	MinOrder int64               `json:"minOrder"`
	StartAt  *time.Time          `json:"startAt"`
	EndAt    *time.Time          `json:"endAt"`
	Active   *bool               `json:"active"`
}

// GET /admin/promotions
func (h *AdminController) ListPromotions(c *gin.Context) {
	out, err := h.PromoRepo.List()
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/promotions
func (h *AdminController) CreatePromotion(c *gin.Context) {
	var req promotionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p := entity.Promotion{
		Code: req.Code, Detail: req.Detail, Type: req.Type,
		Value: req.Value, MinOrder: req.MinOrder,
		StartAt: req.StartAt, EndAt: req.EndAt, Active: true,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := h.PromoRepo.Create(&p); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /admin/promotions/:id
func (h *AdminController) UpdatePromotion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.PromoRepo.Get(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	var req promotionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p.Detail, p.Type, p.Value, p.MinOrder = req.Detail, req.Type, req.Value, req.MinOrder
	p.StartAt, p.EndAt = req.StartAt, req.EndAt
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := h.PromoRepo.Save(p); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/promotions/:id
func (h *AdminController) DeletePromotion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.PromoRepo.Delete(id); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Rewards ----------------

type rewardIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	PointsCost  int    `json:"pointsCost" binding:"required,min=1"`
	Active      *bool  `json:"active"`
}

// GET /admin/rewards
func (h *AdminController) ListRewards(c *gin.Context) {
	var out []entity.Reward
	if err := h.DB.Order("id ASC").Find(&out).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/rewards
func (h *AdminController) CreateReward(c *gin.Context) {
	var req rewardIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r := entity.Reward{
		Name: req.Name, Description: req.Description, Picture: req.Picture,
		PointsCost: req.PointsCost, Active: true,
	}
	if req.Active != nil {
		r.Active = *req.Active
	}
	if err := h.DB.Create(&r).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, r)
}

// PATCH /admin/rewards/:id
func (h *AdminController) UpdateReward(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var r entity.Reward
	if err := h.DB.First(&r, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	var req rewardIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r.Name, r.Description, r.Picture, r.PointsCost = req.Name, req.Description, req.Picture, req.PointsCost
	if req.Active != nil {
		r.Active = *req.Active
	}
	if err := h.DB.Save(&r).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, r)
}

// DELETE /admin/rewards/:id
func (h *AdminController) DeleteReward(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.DB.Delete(&entity.Reward{}, id).Error; err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Orders ----------------

// GET /admin/restaurants/:id/orders?status=&page=&limit=
func (h *AdminController) RestaurantOrders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var statusID *uint
	if name := c.Query("status"); name != "" {
		sid, err := h.OrderRepo.GetStatusIDByName(name)
		if err != nil {
			resp.BadRequest(c, "unknown status")
			return
		}
		statusID = &sid
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	orders, total, err := h.OrderRepo.ListOrdersForRestaurant(id, statusID, page, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders, "total": total, "page": page})
}

func (h *AdminController) orderAction(c *gin.Context, fn func(actorID, orderID uint) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := fn(utils.CurrentUserID(c), id); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// POST /admin/orders/:id/accept
func (h *AdminController) AcceptOrder(c *gin.Context) { h.orderAction(c, h.OrderSvc.Accept) }

// POST /admin/orders/:id/ready
func (h *AdminController) MarkOrderReady(c *gin.Context) { h.orderAction(c, h.OrderSvc.MarkReady) }

// POST /admin/orders/:id/delivered
func (h *AdminController) MarkOrderDelivered(c *gin.Context) {
	h.orderAction(c, h.OrderSvc.MarkDelivered)
}

// POST /admin/orders/:id/complete
func (h *AdminController) CompleteOrder(c *gin.Context) { h.orderAction(c, h.OrderSvc.Complete) }

// ---------------- Points maintenance ----------------

// POST /admin/points/expire
func (h *AdminController) ExpirePoints(c *gin.Context) {
	var req struct {
		Before string `json:"before" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cutoff, err := time.Parse("2006-01-02", req.Before)
	if err != nil {
		resp.BadRequest(c, "before must be YYYY-MM-DD")
		return
	}
	expired, err := h.PointsSvc.ExpirePoints(cutoff)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"pointsExpired": expired})
}
