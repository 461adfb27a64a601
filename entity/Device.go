package entity

import (
	"gorm.io/gorm"
)

type Device struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Platform  string `gorm:"size:20" json:"platform"` // ios | android
	PushToken string `gorm:"uniqueIndex;size:255" json:"pushToken"`
}
