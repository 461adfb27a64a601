package repository

import (
	"errors"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type PassRepository struct{ DB *gorm.DB }

func NewPassRepository(db *gorm.DB) *PassRepository { return &PassRepository{DB: db} }

func (r *PassRepository) GetForUser(userID uint, platform entity.PassPlatform) (*entity.WalletPass, error) {
	var p entity.WalletPass
	err := r.DB.Where("user_id = ? AND platform = ?", userID, platform).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PassRepository) GetBySerial(serial string) (*entity.WalletPass, error) {
	var p entity.WalletPass
	if err := r.DB.Where("serial = ?", serial).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PassRepository) Create(p *entity.WalletPass) error {
	return r.DB.Create(p).Error
}

func (r *PassRepository) Touch(passID uint) error {
	return r.DB.Model(&entity.WalletPass{}).Where("id = ?", passID).
		Update("updated_at", time.Now()).Error
}

// TouchForUser bumps updated_at on the user's pass so registered devices pick
// up the change on their next updated-serials poll. No-op when the user has
// no pass on the platform.
func (r *PassRepository) TouchForUser(tx *gorm.DB, userID uint, platform entity.PassPlatform) error {
	return tx.Model(&entity.WalletPass{}).
		Where("user_id = ? AND platform = ?", userID, platform).
		Update("updated_at", time.Now()).Error
}

// ---------------- Apple device registrations ----------------

func (r *PassRepository) Register(passID uint, deviceLibraryID, pushToken string) error {
	var reg entity.PassRegistration
	err := r.DB.Where("wallet_pass_id = ? AND device_library_id = ?", passID, deviceLibraryID).
		First(&reg).Error
	if err == nil {
		reg.PushToken = pushToken
		return r.DB.Save(&reg).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	reg = entity.PassRegistration{
		WalletPassID:    passID,
		DeviceLibraryID: deviceLibraryID,
		PushToken:       pushToken,
	}
	return r.DB.Create(&reg).Error
}

func (r *PassRepository) Unregister(passID uint, deviceLibraryID string) error {
	return r.DB.Unscoped().
		Where("wallet_pass_id = ? AND device_library_id = ?", passID, deviceLibraryID).
		Delete(&entity.PassRegistration{}).Error
}

// UpdatedSerialsForDevice lists serials of passes registered to the device
// that changed after the tag, per Apple's web service protocol.
func (r *PassRepository) UpdatedSerialsForDevice(deviceLibraryID string, since time.Time) ([]string, error) {
	var serials []string
	err := r.DB.Model(&entity.WalletPass{}).
		Joins("JOIN pass_registrations pr ON pr.wallet_pass_id = wallet_passes.id").
		Where("pr.device_library_id = ? AND pr.deleted_at IS NULL", deviceLibraryID).
		Where("wallet_passes.updated_at > ?", since).
		Pluck("wallet_passes.serial", &serials).Error
	return serials, err
}
