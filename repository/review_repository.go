package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rev *entity.OrderReview) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.OrderReview{}).Where("order_id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *ReviewRepository) GetForOrder(orderID uint) (*entity.OrderReview, error) {
	var rev entity.OrderReview
	if err := r.DB.Where("order_id = ?", orderID).First(&rev).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}
