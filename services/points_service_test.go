package services

import (
	"testing"
	"time"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarnedForTotal(t *testing.T) {
	assert.Equal(t, 0, EarnedForTotal(0))
	assert.Equal(t, 0, EarnedForTotal(999))
	assert.Equal(t, 1, EarnedForTotal(1000))
	assert.Equal(t, 25, EarnedForTotal(25999))
	assert.Equal(t, 0, EarnedForTotal(-500))
}

func TestBalanceSumsAllEntries(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")

	require.NoError(t, env.Points.Earn(env.DB, user.ID, 120, "order x", "order", 1))
	require.NoError(t, env.Points.Redeem(env.DB, user.ID, 20, "order y", "order", 2))
	require.NoError(t, env.Points.Adjust(env.DB, user.ID, -5, "correction"))

	balance, err := env.Points.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 95, balance)

	history, err := env.Points.History(user.ID, 10)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestRedeemOverdraftFails(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	require.NoError(t, env.Points.Earn(env.DB, user.ID, 10, "order", "order", 1))

	err := env.Points.Redeem(env.DB, user.ID, 11, "too much", "order", 2)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	balance, err := env.Points.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, balance)
}

func TestRedeemReward(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	require.NoError(t, env.Points.Earn(env.DB, user.ID, 500, "order", "order", 1))

	reward := entity.Reward{Name: "Postre gratis", PointsCost: 300, Active: true}
	require.NoError(t, env.DB.Create(&reward).Error)

	got, err := env.Points.RedeemReward(user.ID, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, reward.Name, got.Name)

	balance, err := env.Points.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, balance)

	// a second redemption overdraws
	_, err = env.Points.RedeemReward(user.ID, reward.ID)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestRedeemInactiveReward(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	require.NoError(t, env.Points.Earn(env.DB, user.ID, 500, "order", "order", 1))

	reward := entity.Reward{Name: "Retired", PointsCost: 100, Active: false}
	require.NoError(t, env.DB.Create(&reward).Error)

	// the create must persist the explicit false, not a column default
	var stored entity.Reward
	require.NoError(t, env.DB.First(&stored, reward.ID).Error)
	require.False(t, stored.Active)

	_, err := env.Points.RedeemReward(user.ID, reward.ID)
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestExpirePointsFIFO(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")

	require.NoError(t, env.Points.Earn(env.DB, user.ID, 100, "old order", "order", 1))
	// age the first entry past the cutoff
	old := time.Now().AddDate(-1, 0, 0)
	require.NoError(t, env.DB.Model(&entity.PointsTransaction{}).
		Where("user_id = ?", user.ID).
		Update("created_at", old).Error)

	require.NoError(t, env.Points.Earn(env.DB, user.ID, 50, "recent order", "order", 2))
	require.NoError(t, env.Points.Redeem(env.DB, user.ID, 30, "order", "order", 3))

	// the redemption consumed 30 of the old 100, leaving 70 to expire
	cutoff := time.Now().AddDate(0, -6, 0)
	expired, err := env.Points.ExpirePoints(cutoff)
	require.NoError(t, err)
	assert.Equal(t, 70, expired)

	balance, err := env.Points.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	// a second sweep is a no-op
	expired, err = env.Points.ExpirePoints(cutoff)
	require.NoError(t, err)
	assert.Zero(t, expired)
}
