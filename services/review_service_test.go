package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewOnlyAfterDelivery(t *testing.T) {
	env := newTestEnv(t)
	user, _, _ := checkoutFixture(t, env)
	res, err := env.Order.CreateFromCart(context.Background(), user.ID, &CheckoutReq{})
	require.NoError(t, err)

	in := &CreateReviewIn{FoodRating: 5, ServiceRating: 4, DeliveryRating: 5, OverallRating: 5, Comment: "rico"}

	_, err = env.Review.Create(user.ID, res.ID, in)
	assert.ErrorIs(t, err, ErrReviewNotAllowed)

	staff := seedUser(t, env.DB, "staff@example.com")
	require.NoError(t, env.Order.Accept(staff.ID, res.ID))
	require.NoError(t, env.Order.MarkReady(staff.ID, res.ID))
	require.NoError(t, env.Order.MarkDelivered(staff.ID, res.ID))

	rev, err := env.Review.Create(user.ID, res.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 5, rev.FoodRating)
	assert.Equal(t, "rico", rev.Comment)

	// one review per order
	_, err = env.Review.Create(user.ID, res.ID, in)
	assert.ErrorIs(t, err, ErrReviewNotAllowed)
}

func TestReviewForeignOrderFails(t *testing.T) {
	env := newTestEnv(t)
	user, _, _ := checkoutFixture(t, env)
	res, err := env.Order.CreateFromCart(context.Background(), user.ID, &CheckoutReq{})
	require.NoError(t, err)

	other := seedUser(t, env.DB, "eve@example.com")
	_, err = env.Review.Create(other.ID, res.ID, &CreateReviewIn{
		FoodRating: 1, ServiceRating: 1, DeliveryRating: 1, OverallRating: 1,
	})
	assert.Error(t, err)
}
