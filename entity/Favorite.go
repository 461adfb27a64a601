package entity

import (
	"gorm.io/gorm"
)

type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemCombo   ItemType = "combo"
)

// Tagged reference: a favorite points at a product or a combo, resolved in
// FavoriteService against the matching table.
type Favorite struct {
	gorm.Model
	UserID uint `gorm:"index:idx_fav_user_item,unique" json:"userId"`
	User   User `json:"-"`

	ItemType ItemType `gorm:"size:20;index:idx_fav_user_item,unique" json:"itemType"`
	ItemID   uint     `gorm:"index:idx_fav_user_item,unique" json:"itemId"`
}
