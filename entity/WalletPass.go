package entity

import (
	"gorm.io/gorm"
)

type PassPlatform string

const (
	PassApple  PassPlatform = "apple"
	PassGoogle PassPlatform = "google"
)

// Loyalty pass issued to a customer. Apple passes authenticate web-service
// calls with AuthToken; Google passes only need the serial.
type WalletPass struct {
	gorm.Model
	UserID uint `gorm:"index:idx_pass_user_platform,unique" json:"userId"`
	User   User `json:"-"`

	Platform  PassPlatform `gorm:"size:20;index:idx_pass_user_platform,unique" json:"platform"`
	Serial    string       `gorm:"uniqueIndex;size:36" json:"serial"`
	AuthToken string       `gorm:"size:64" json:"-"`

	Registrations []PassRegistration `gorm:"foreignKey:WalletPassID" json:"-"`
}
