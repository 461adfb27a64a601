package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggleFavorite(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	p, _ := seedProduct(t, env.DB, "Hamburguesa", 10000, 12000)

	on, err := env.Favorite.Toggle(user.ID, entity.ItemProduct, p.ID)
	require.NoError(t, err)
	assert.True(t, on)

	list, err := env.Favorite.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.Name, list[0].Name)

	off, err := env.Favorite.Toggle(user.ID, entity.ItemProduct, p.ID)
	require.NoError(t, err)
	assert.False(t, off)

	list, err = env.Favorite.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestToggleUnknownItemFails(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")

	_, err := env.Favorite.Toggle(user.ID, entity.ItemProduct, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecentViewsDeduplicated(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	p1, _ := seedProduct(t, env.DB, "Hamburguesa", 10000, 12000)
	p2, _ := seedProduct(t, env.DB, "Pollo", 8000, 9000)
	cb, _ := seedCombo(t, env.DB, "Duo", 20000, 22000, []*entity.Product{p1, p2}, 0)

	require.NoError(t, env.Favorite.RecordView(user.ID, entity.ItemProduct, p1.ID))
	require.NoError(t, env.Favorite.RecordView(user.ID, entity.ItemProduct, p2.ID))
	require.NoError(t, env.Favorite.RecordView(user.ID, entity.ItemProduct, p1.ID))
	require.NoError(t, env.Favorite.RecordView(user.ID, entity.ItemCombo, cb.ID))

	views, err := env.Favorite.RecentViews(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, views, 3)
	// most recent first
	assert.Equal(t, cb.Name, views[0].Name)
	assert.Equal(t, p1.Name, views[1].Name)
	assert.Equal(t, p2.Name, views[2].Name)
}
