package services

import (
	"context"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoordinatesInsidePolygon(t *testing.T) {
	env := newTestEnv(t)
	rest := seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 1500, true)
	seedRestaurant(t, env.DB, "Oriente", entity.ZoneInterior, 15.50, -89.90, 2000, true)

	res, err := env.Delivery.ValidateCoordinates(context.Background(), 14.64, -90.50)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	require.NotNil(t, res.Restaurant)
	assert.Equal(t, rest.ID, res.Restaurant.ID)
	assert.Equal(t, entity.ZoneCapital, res.Zone)
	assert.Empty(t, res.NearbyPickup)
}

func TestValidateCoordinatesDeterministic(t *testing.T) {
	env := newTestEnv(t)
	// two overlapping polygons; the nearer center must win every time
	near := seedRestaurant(t, env.DB, "Near", entity.ZoneCapital, 14.63, -90.51, 0, true)
	seedRestaurant(t, env.DB, "FarCenter", entity.ZoneCapital, 14.66, -90.54, 0, true)

	for i := 0; i < 5; i++ {
		res, err := env.Delivery.ValidateCoordinates(context.Background(), 14.632, -90.512)
		require.NoError(t, err)
		require.True(t, res.Valid)
		assert.Equal(t, near.ID, res.Restaurant.ID)
	}
}

func TestValidateCoordinatesOutsideReturnsNearbySorted(t *testing.T) {
	env := newTestEnv(t)
	seedRestaurant(t, env.DB, "Centro", entity.ZoneCapital, 14.63, -90.51, 0, true)
	seedRestaurant(t, env.DB, "Oriente", entity.ZoneInterior, 15.50, -89.90, 0, true)
	seedRestaurant(t, env.DB, "Sur", entity.ZoneCapital, 14.30, -90.78, 0, false)

	res, err := env.Delivery.ValidateCoordinates(context.Background(), 14.10, -90.30)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Message)
	require.NotEmpty(t, res.NearbyPickup)
	assert.LessOrEqual(t, len(res.NearbyPickup), 5)
	for i := 1; i < len(res.NearbyPickup); i++ {
		assert.LessOrEqual(t, res.NearbyPickup[i-1].DistanceKm, res.NearbyPickup[i].DistanceKm)
	}
}

func TestValidateCoordinatesIgnoresUnfencedRestaurants(t *testing.T) {
	env := newTestEnv(t)
	// pickup-only restaurant right on top of the point must not validate delivery
	seedRestaurant(t, env.DB, "PickupOnly", entity.ZoneCapital, 14.63, -90.51, 0, false)

	res, err := env.Delivery.ValidateCoordinates(context.Background(), 14.63, -90.51)
	require.NoError(t, err)
	assert.False(t, res.Valid)
}
