package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

// Toggle removes an existing favorite or creates one; returns true when the
// item ends up favorited.
func (r *FavoriteRepository) Toggle(userID uint, itemType entity.ItemType, itemID uint) (bool, error) {
	var f entity.Favorite
	err := r.DB.Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		First(&f).Error
	if err == nil {
		return false, r.DB.Unscoped().Delete(&f).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	f = entity.Favorite{UserID: userID, ItemType: itemType, ItemID: itemID}
	return true, r.DB.Create(&f).Error
}

func (r *FavoriteRepository) RecordView(v *entity.ProductView) error {
	return r.DB.Create(v).Error
}

func (r *FavoriteRepository) RecentViews(userID uint, limit int) ([]entity.ProductView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var out []entity.ProductView
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}
