package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type NitRepository struct{ DB *gorm.DB }

func NewNitRepository(db *gorm.DB) *NitRepository { return &NitRepository{DB: db} }

func (r *NitRepository) ListForUser(userID uint) ([]entity.CustomerNit, error) {
	var out []entity.CustomerNit
	err := r.DB.Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *NitRepository) GetForUser(userID, id uint) (*entity.CustomerNit, error) {
	var n entity.CustomerNit
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NitRepository) Create(n *entity.CustomerNit) error {
	return r.DB.Create(n).Error
}

func (r *NitRepository) Save(n *entity.CustomerNit) error {
	return r.DB.Save(n).Error
}

func (r *NitRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.CustomerNit{}).Error
}

func (r *NitRepository) SetDefault(userID, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var n entity.CustomerNit
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.CustomerNit{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&n).Update("is_default", true).Error
	})
}

func (r *NitRepository) DefaultForUser(userID uint) (*entity.CustomerNit, error) {
	var n entity.CustomerNit
	err := r.DB.Where("user_id = ? AND is_default = ?", userID, true).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}
