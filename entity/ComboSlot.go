package entity

import (
	"gorm.io/gorm"
)

// One choice the customer makes inside a combo (e.g. "pick your drink").
type ComboSlot struct {
	gorm.Model
	ComboID uint  `gorm:"index" json:"comboId"`
	Combo   Combo `json:"-"`

	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `json:"sortOrder"`

	Items []ComboSlotItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
