package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotionUsableWindow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	p := Promotion{Active: true, MinOrder: 5000}
	assert.False(t, p.Usable(now, 4999))
	assert.True(t, p.Usable(now, 5000))

	p.StartAt = &future
	assert.False(t, p.Usable(now, 10000))

	p.StartAt = &past
	p.EndAt = &past
	assert.False(t, p.Usable(now, 10000))

	p.EndAt = &future
	assert.True(t, p.Usable(now, 10000))

	p.Active = false
	assert.False(t, p.Usable(now, 10000))
}

func TestPromotionDiscountCappedAtSubtotal(t *testing.T) {
	percent := Promotion{Type: DiscountPercent, Value: 25}
	assert.Equal(t, int64(2500), percent.DiscountOn(10000))

	fixed := Promotion{Type: DiscountFixed, Value: 3000}
	assert.Equal(t, int64(3000), fixed.DiscountOn(10000))
	assert.Equal(t, int64(2000), fixed.DiscountOn(2000))

	negative := Promotion{Type: DiscountFixed, Value: -100}
	assert.Equal(t, int64(0), negative.DiscountOn(2000))
}
