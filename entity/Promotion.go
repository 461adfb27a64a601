package entity

import (
	"time"

	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

type Promotion struct {
	gorm.Model
	Code   string       `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Detail string       `json:"detail"`
	Type   DiscountType `gorm:"size:20;not null" json:"type"`

	// Percent (0-100) or fixed centavos depending on Type.
	Value    int64 `json:"value"`
	MinOrder int64 `json:"minOrder"`

	StartAt *time.Time `json:"startAt,omitempty"`
	EndAt   *time.Time `json:"endAt,omitempty"`
	Active  bool       `gorm:"not null" json:"active"`
}

func (p *Promotion) Usable(now time.Time, subtotal int64) bool {
	if !p.Active || subtotal < p.MinOrder {
		return false
	}
	if p.StartAt != nil && now.Before(*p.StartAt) {
		return false
	}
	if p.EndAt != nil && now.After(*p.EndAt) {
		return false
	}
	return true
}

// DiscountOn returns the discount in centavos, capped at the subtotal.
func (p *Promotion) DiscountOn(subtotal int64) int64 {
	var d int64
	switch p.Type {
	case DiscountPercent:
		d = subtotal * p.Value / 100
	case DiscountFixed:
		d = p.Value
	}
	if d > subtotal {
		d = subtotal
	}
	if d < 0 {
		d = 0
	}
	return d
}
