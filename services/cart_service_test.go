package services

import (
	"context"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesIdenticalLines(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	p, v := seedProduct(t, env.DB, "Hamburguesa", 10000, 12000)

	in := &AddToCartIn{RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1}
	require.NoError(t, env.Cart.Add(user.ID, in))
	require.NoError(t, env.Cart.Add(user.ID, in))

	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, int64(10000), cart.Items[0].UnitPrice)
	assert.Equal(t, int64(20000), cart.Items[0].Total)
	assert.Equal(t, v.ID, *cart.Items[0].VariantID)
}

func TestAddLocksCartToOneRestaurant(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	r1 := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	r2 := seedRestaurant(t, env.DB, "Oriente", entity.ZoneInterior, 15.50, -89.90, 0, false)
	p, _ := seedProduct(t, env.DB, "Pollo", 8000, 9000)

	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: r1.ID, ProductID: &p.ID, Qty: 1}))
	err := env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: r2.ID, ProductID: &p.ID, Qty: 1})
	assert.ErrorIs(t, err, ErrCartConflictRestaurant)
}

func TestAddEnforcesRequiredOptions(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	p, _ := seedProduct(t, env.DB, "Pizza", 15000, 17000)
	_, vals := seedRequiredOption(t, env.DB, p.ID, "Size", 3000)

	err := env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1})
	assert.ErrorIs(t, err, ErrInvalidItemConfig)

	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{
		RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1,
		Selections: []SelectionIn{{OptionValueID: vals[1].ID}},
	}))

	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(18000), cart.Items[0].UnitPrice)
	require.Len(t, cart.Items[0].Selections, 1)
	assert.Equal(t, int64(3000), cart.Items[0].Selections[0].PriceDelta)
}

func TestAddDoesNotMergeIntoConfiguredLine(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	p, _ := seedProduct(t, env.DB, "Hamburguesa", 10000, 12000)

	topping := entity.Option{Name: "Topping", MaxPicks: 1}
	require.NoError(t, env.DB.Create(&topping).Error)
	val := entity.OptionValue{OptionID: topping.ID, Name: "Queso extra", PriceAdjustment: 500, Available: true}
	require.NoError(t, env.DB.Create(&val).Error)
	require.NoError(t, env.DB.Create(&entity.ProductOption{ProductID: p.ID, OptionID: topping.ID}).Error)

	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{
		RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1,
		Selections: []SelectionIn{{OptionValueID: val.ID}},
	}))
	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1}))

	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	prices := []int64{cart.Items[0].UnitPrice, cart.Items[1].UnitPrice}
	assert.ElementsMatch(t, []int64{10500, 10000}, prices)
	assert.Equal(t, 1, cart.Items[0].Qty)
	assert.Equal(t, 1, cart.Items[1].Qty)
}

func TestAddEnforcesMaxPicks(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	p, _ := seedProduct(t, env.DB, "Pizza", 15000, 17000)
	_, vals := seedRequiredOption(t, env.DB, p.ID, "Size", 3000)

	// the group allows one pick; two values from it must be rejected
	err := env.Cart.Add(user.ID, &AddToCartIn{
		RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1,
		Selections: []SelectionIn{{OptionValueID: vals[0].ID}, {OptionValueID: vals[1].ID}},
	})
	assert.ErrorIs(t, err, ErrInvalidItemConfig)
}

func TestAddRejectsForeignOptionValue(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	p, _ := seedProduct(t, env.DB, "Pizza", 15000, 17000)
	other, _ := seedProduct(t, env.DB, "Tacos", 9000, 9500)
	_, otherVals := seedRequiredOption(t, env.DB, other.ID, "Salsa", 500)

	err := env.Cart.Add(user.ID, &AddToCartIn{
		RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1,
		Selections: []SelectionIn{{OptionValueID: otherVals[0].ID}},
	})
	assert.ErrorIs(t, err, ErrInvalidItemConfig)
}

func TestAddComboRequiresEverySlot(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	p1, _ := seedProduct(t, env.DB, "Pollo", 8000, 9000)
	p2, _ := seedProduct(t, env.DB, "Costilla", 11000, 12000)
	cb, slot := seedCombo(t, env.DB, "Duo", 20000, 22000, []*entity.Product{p1, p2}, 2500)

	err := env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: rest.ID, ComboID: &cb.ID, Qty: 1})
	assert.ErrorIs(t, err, ErrInvalidItemConfig)

	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{
		RestaurantID: rest.ID, ComboID: &cb.ID, Qty: 1,
		ComboSelections: []ComboSelectionIn{{ComboSlotID: slot.ID, ProductID: p2.ID}},
	}))

	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	// combo base plus the surcharge of the picked product
	assert.Equal(t, int64(22500), cart.Items[0].UnitPrice)
}

func TestAddPicksDefaultVariant(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)

	cat := entity.Category{Name: "antojitos", Active: true}
	require.NoError(t, env.DB.Create(&cat).Error)
	p := entity.Product{Name: "Nachos", Available: true, CategoryID: cat.ID}
	require.NoError(t, env.DB.Create(&p).Error)
	small := entity.ProductVariant{ProductID: p.ID, Name: "Pequeno", PriceCapital: 8000, PriceInterior: 8500}
	require.NoError(t, env.DB.Create(&small).Error)
	big := entity.ProductVariant{ProductID: p.ID, Name: "Grande", PriceCapital: 11000, PriceInterior: 11500, Default: true}
	require.NoError(t, env.DB.Create(&big).Error)

	// no variant given: the flagged default wins even though it is not the
	// first row
	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1}))

	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, big.ID, *cart.Items[0].VariantID)
	assert.Equal(t, int64(11000), cart.Items[0].UnitPrice)
}

func TestInteriorZonePricing(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Oriente", entity.ZoneInterior, 15.50, -89.90, 0, false)
	p, _ := seedProduct(t, env.DB, "Hamburguesa", 10000, 12000)

	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1}))

	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(12000), cart.Items[0].UnitPrice)
}

func TestSummaryArithmetic(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 1500, true)
	p, _ := seedProduct(t, env.DB, "Hamburguesa", 10000, 12000)
	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: &p.ID, Qty: 2}))

	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	sum, err := env.Cart.Summary(cart)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), sum.Subtotal)
	assert.Equal(t, int64(0), sum.DeliveryFee)
	assert.Equal(t, sum.Subtotal-sum.Discount+sum.DeliveryFee, sum.Total)

	require.NoError(t, env.PromoRepo.Create(&entity.Promotion{
		Code: "SAVE20", Type: entity.DiscountFixed, Value: 2000, Active: true,
	}))
	require.NoError(t, env.Cart.ApplyPromo(user.ID, "save20"))

	addr := seedAddress(t, env.DB, user.ID, 14.64, -90.50)
	_, err = env.Cart.SetDeliveryAddress(context.Background(), user.ID, addr.ID)
	require.NoError(t, err)

	cart, err = env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	sum, err = env.Cart.Summary(cart)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), sum.Discount)
	assert.Equal(t, int64(1500), sum.DeliveryFee)
	assert.Equal(t, int64(20000-2000+1500), sum.Total)
	assert.GreaterOrEqual(t, sum.Total, int64(0))
}

func TestPromoBelowMinOrderRejected(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	p, _ := seedProduct(t, env.DB, "Tacos", 5000, 5500)
	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: &p.ID, Qty: 1}))

	require.NoError(t, env.PromoRepo.Create(&entity.Promotion{
		Code: "BIG", Type: entity.DiscountPercent, Value: 10, MinOrder: 10000, Active: true,
	}))
	err := env.Cart.ApplyPromo(user.ID, "BIG")
	assert.ErrorIs(t, err, ErrPromoNotUsable)
}

func TestRemoveLastItemUnlocksRestaurant(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	r1 := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, false)
	r2 := seedRestaurant(t, env.DB, "Oriente", entity.ZoneInterior, 15.50, -89.90, 0, false)
	p, _ := seedProduct(t, env.DB, "Pollo", 8000, 9000)

	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: r1.ID, ProductID: &p.ID, Qty: 1}))
	cart, err := env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// qty 0 removes the line entirely
	require.NoError(t, env.Cart.UpdateQty(user.ID, cart.Items[0].ID, 0))
	cart, err = env.CartRepo.GetCartWithItems(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.RestaurantID)

	// the next add may pick a different restaurant
	require.NoError(t, env.Cart.Add(user.ID, &AddToCartIn{RestaurantID: r2.ID, ProductID: &p.ID, Qty: 1}))
}

func TestSetDeliveryAddressOutsideZone(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, true)
	addr := seedAddress(t, env.DB, user.ID, 16.90, -89.90)

	_, err := env.Cart.SetDeliveryAddress(context.Background(), user.ID, addr.ID)
	var dz *DeliveryZoneError
	require.ErrorAs(t, err, &dz)
	assert.Equal(t, addr.Latitude, dz.Lat)
	assert.NotEmpty(t, dz.NearbyPickup)
}
