package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("Geofence").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) ListActive() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Preload("Geofence").
		Where("active = ?", true).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ? AND active = ?", id, true).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) UpsertGeofence(g *entity.Geofence) error {
	var exist entity.Geofence
	err := r.DB.Where("restaurant_id = ?", g.RestaurantID).First(&exist).Error
	if err == nil {
		exist.Vertices = g.Vertices
		return r.DB.Save(&exist).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(g).Error
}
