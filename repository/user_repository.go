package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Get(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Save(u *entity.User) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) UpsertDevice(userID uint, platform, pushToken string) error {
	var d entity.Device
	err := r.DB.Where("push_token = ?", pushToken).First(&d).Error
	if err == nil {
		d.UserID = userID
		d.Platform = platform
		return r.DB.Save(&d).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(&entity.Device{UserID: userID, Platform: platform, PushToken: pushToken}).Error
}

func (r *UserRepository) DeleteDevice(userID uint, pushToken string) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND push_token = ?", userID, pushToken).
		Delete(&entity.Device{}).Error
}

func (r *UserRepository) ListDevices(userID uint) ([]entity.Device, error) {
	var out []entity.Device
	err := r.DB.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}
