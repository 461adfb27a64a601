package entity

import (
	"gorm.io/gorm"
)

type PointsType string

const (
	PointsEarned     PointsType = "earned"
	PointsRedeemed   PointsType = "redeemed"
	PointsExpired    PointsType = "expired"
	PointsBonus      PointsType = "bonus"
	PointsAdjustment PointsType = "adjustment"
)

// Append-only ledger entry. Points is signed; the balance is the sum over all
// of a customer's rows.
type PointsTransaction struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Points int        `json:"points"`
	Type   PointsType `gorm:"size:20;not null" json:"type"`
	Detail string     `json:"detail"`

	// Optional tagged reference to the row that produced this entry.
	ReferenceType string `gorm:"size:20" json:"referenceType,omitempty"` // order | reward
	ReferenceID   uint   `json:"referenceId,omitempty"`
}
