package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint      `json:"id"`
	Number        string    `json:"number"`
	RestaurantID  uint      `json:"restaurantId"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, number, restaurant_id, total, order_status_id, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, statusID *uint, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if statusID != nil && *statusID != 0 {
		q = q.Where("order_status_id = ?", *statusID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []entity.Order
	if err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateStatusGuard flips the status only when the order is still in the
// expected state; RowsAffected == 0 means a lost race or illegal transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint, extra map[string]any) (int64, error) {
	updates := map[string]any{"order_status_id": toID}
	for k, v := range extra {
		updates[k] = v
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AppendStatusHistory(tx *gorm.DB, h *entity.OrderStatusHistory) error {
	return tx.Create(h).Error
}

func (r *OrderRepository) GetStatusHistory(orderID uint) ([]entity.OrderStatusHistory, error) {
	var rows []entity.OrderStatusHistory
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&rows).Error
	return rows, err
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("Selections").Preload("ComboSelections").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *OrderRepository) GetStatusName(id uint) (string, error) {
	var row struct{ StatusName string }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("status_name").Where("id = ?", id).First(&row).Error
	return row.StatusName, err
}
