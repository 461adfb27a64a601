package entity

import (
	"gorm.io/gorm"
)

// Apple device registered for push updates of a pass.
type PassRegistration struct {
	gorm.Model
	WalletPassID uint       `gorm:"index:idx_reg_pass_device,unique" json:"walletPassId"`
	WalletPass   WalletPass `json:"-"`

	DeviceLibraryID string `gorm:"size:64;index:idx_reg_pass_device,unique" json:"deviceLibraryId"`
	PushToken       string `gorm:"size:255" json:"pushToken"`
}
