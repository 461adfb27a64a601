package repository

import (
	"errors"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Selections").
		Preload("Items.ComboSelections").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint, expiresAt time.Time) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, ServiceType: entity.ServicePickup, Zone: entity.ZoneCapital, ExpiresAt: expiresAt}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) Save(tx *gorm.DB, c *entity.Cart) error {
	return tx.Save(c).Error
}

// UpsertItem merges identical plain configurations (same catalog row, variant
// and note) instead of adding a duplicate line. Lines carrying option or
// combo selections never merge; the lookup excludes them at the SQL level.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	if len(row.Selections) == 0 && len(row.ComboSelections) == 0 {
		var exist entity.CartItem
		q := tx.Where("cart_id = ? AND note = ?", cartID, row.Note).
			Where("NOT EXISTS (SELECT 1 FROM cart_item_selections s WHERE s.cart_item_id = cart_items.id AND s.deleted_at IS NULL)").
			Where("NOT EXISTS (SELECT 1 FROM cart_item_combo_selections cs WHERE cs.cart_item_id = cart_items.id AND cs.deleted_at IS NULL)")
		if row.ProductID != nil {
			q = q.Where("product_id = ?", *row.ProductID)
		} else {
			q = q.Where("combo_id = ?", *row.ComboID)
		}
		if row.VariantID != nil {
			q = q.Where("variant_id = ?", *row.VariantID)
		} else {
			q = q.Where("variant_id IS NULL")
		}
		err := q.First(&exist).Error
		if err == nil {
			exist.Qty += row.Qty
			exist.Total = int64(exist.Qty) * exist.UnitPrice
			return tx.Save(&exist).Error
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	if err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// Empty cart unlocks the restaurant so the next add can pick a new one.
	return tx.Exec(`
		UPDATE carts SET restaurant_id = 0
		 WHERE user_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, userID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Updates(map[string]any{"restaurant_id": 0, "promotion_id": nil}).Error
}

func (r *CartRepository) UpdateItemPrice(tx *gorm.DB, itemID uint, unitPrice int64) error {
	return tx.Exec(`
		UPDATE cart_items SET unit_price = ?, total = ? * qty WHERE id = ?
	`, unitPrice, unitPrice, itemID).Error
}
