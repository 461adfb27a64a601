package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) ListForUser(userID uint) ([]entity.CustomerAddress, error) {
	var out []entity.CustomerAddress
	err := r.DB.Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *AddressRepository) GetForUser(userID, id uint) (*entity.CustomerAddress, error) {
	var a entity.CustomerAddress
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(a *entity.CustomerAddress) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) Save(a *entity.CustomerAddress) error {
	return r.DB.Save(a).Error
}

func (r *AddressRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.CustomerAddress{}).Error
}

// SetDefault leaves exactly one is_default row for the user.
func (r *AddressRepository) SetDefault(userID, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var a entity.CustomerAddress
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.CustomerAddress{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&a).Update("is_default", true).Error
	})
}
