package services_test

import (
	"testing"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratedCourier(t *testing.T, rating float64, completed int) *courier.Courier {
	t.Helper()
	acc, err := account.NewAccount("Courier", "courier@example.com", "", "hash")
	require.NoError(t, err)
	c, err := courier.RestoreCourier(
		kernel.NewUUID(), acc, "12345678900", "",
		kernel.NewUUID(), courier.Available,
		decimal.NewFromFloat(rating), completed, completed,
	)
	require.NoError(t, err)
	return c
}

func TestDispatcher_SelectBest(t *testing.T) {
	t.Run("picks the highest rated courier", func(t *testing.T) {
		low := ratedCourier(t, 3.2, 50)
		high := ratedCourier(t, 4.8, 5)

		best, err := services.NewDispatcher().SelectBest([]*courier.Courier{low, high})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(high))
	})

	t.Run("breaks rating ties by completed deliveries", func(t *testing.T) {
		junior := ratedCourier(t, 4.5, 3)
		veteran := ratedCourier(t, 4.5, 120)

		best, err := services.NewDispatcher().SelectBest([]*courier.Courier{junior, veteran})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(veteran))
	})

	t.Run("skips unavailable couriers", func(t *testing.T) {
		busy := ratedCourier(t, 5.0, 10)
		require.NoError(t, busy.SetAvailability(courier.Busy))
		free := ratedCourier(t, 2.0, 1)

		best, err := services.NewDispatcher().SelectBest([]*courier.Courier{busy, free})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(free))
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := services.NewDispatcher().SelectBest(nil)

		assert.ErrorIs(t, err, services.ErrNoSuitableCourier)
	})
}
