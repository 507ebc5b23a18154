package delivery_test

import (
	"testing"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Av. Principal, 1000", "Rua das Flores, 123", "1 pizza",
		decimal.NewFromFloat(15.50), decimal.NewFromFloat(5.00),
		nil, "",
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		minutes := 30
		d, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "Rua das Flores, 123", "groceries",
			decimal.NewFromFloat(0.01), decimal.Zero,
			&minutes, "ring the bell",
		)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.PendingPickup, d.Status())
		assert.Nil(t, d.Courier())
		assert.Nil(t, d.StartedAt())
		assert.Nil(t, d.CompletedAt())
		assert.Nil(t, d.CancelledAt())
		assert.False(t, d.CreatedAt().IsZero())
		assert.Equal(t, 30, *d.EstimatedMinutes())
		assert.Equal(t, "ring the bell", d.Notes())
	})

	t.Run("fee of zero is rejected", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "Rua das Flores, 123", "",
			decimal.Zero, decimal.Zero, nil, "",
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative tip is rejected", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "Rua das Flores, 123", "",
			decimal.NewFromInt(10), decimal.NewFromInt(-1), nil, "",
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing destination", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "  ", "",
			decimal.NewFromInt(10), decimal.Zero, nil, "",
		)
		assert.ErrorIs(t, err, delivery.ErrDestinationIsRequired)
	})

	t.Run("non-positive estimated minutes", func(t *testing.T) {
		minutes := 0
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "Rua das Flores, 123", "",
			decimal.NewFromInt(10), decimal.Zero, &minutes, "",
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_AssignCourier(t *testing.T) {
	t.Run("assigns and moves to Collecting", func(t *testing.T) {
		d := newTestDelivery(t)
		courierID := kernel.NewUUID()

		require.NoError(t, d.AssignCourier(courierID))

		assert.Equal(t, delivery.Collecting, d.Status())
		require.NotNil(t, d.Courier())
		assert.True(t, d.Courier().IsEqual(courierID))
		assert.NotNil(t, d.StartedAt())
	})

	t.Run("second assignment is rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(kernel.NewUUID()))

		err := d.AssignCourier(kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("terminal delivery is rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.ChangeStatus(delivery.Cancelled)
		require.NoError(t, err)

		assert.ErrorIs(t, d.AssignCourier(kernel.NewUUID()), errs.ErrInvalidState)
	})

	t.Run("zero courier id is rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		var zero kernel.UUID

		assert.Error(t, d.AssignCourier(zero))
	})
}

func TestDelivery_ChangeStatus(t *testing.T) {
	t.Run("delivered stamps completion", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(kernel.NewUUID()))

		effect, err := d.ChangeStatus(delivery.Delivered)

		require.NoError(t, err)
		assert.True(t, effect.CountCompletion)
		assert.True(t, effect.ReleaseCourier)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.NotNil(t, d.CompletedAt())
		assert.Nil(t, d.CancelledAt())
	})

	t.Run("cancellation stamps cancelledAt only", func(t *testing.T) {
		d := newTestDelivery(t)

		_, err := d.ChangeStatus(delivery.Problem)

		require.NoError(t, err)
		assert.NotNil(t, d.CancelledAt())
		assert.Nil(t, d.CompletedAt())
	})

	t.Run("completed and cancelled are mutually exclusive", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.ChangeStatus(delivery.Delivered)
		require.NoError(t, err)

		_, err = d.ChangeStatus(delivery.Cancelled)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, d.CancelledAt())
	})

	t.Run("re-applying a terminal status is rejected and preserves timestamps", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.ChangeStatus(delivery.Delivered)
		require.NoError(t, err)
		first := d.CompletedAt()

		time.Sleep(5 * time.Millisecond)
		_, err = d.ChangeStatus(delivery.Delivered)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, first, d.CompletedAt())
	})

	t.Run("assigned delivery cannot return to PendingPickup", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(kernel.NewUUID()))

		_, err := d.ChangeStatus(delivery.PendingPickup)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, delivery.Collecting, d.Status())

		// every state ChangeStatus can produce must be restorable
		restored, restoreErr := delivery.RestoreDelivery(
			d.ID(), d.StoreID(), d.CustomerID(), d.Courier(),
			d.Origin(), d.Destination(), d.ProductDescription(),
			d.Fee(), d.Tip(), d.EstimatedMinutes(),
			d.Status(), d.Notes(),
			d.CreatedAt(), d.StartedAt(), d.CompletedAt(), d.CancelledAt(),
		)
		require.NoError(t, restoreErr)
		assert.Equal(t, delivery.Collecting, restored.Status())
	})

	t.Run("unassigned delivery may re-enter PendingPickup", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.ChangeStatus(delivery.Collecting)
		require.NoError(t, err)

		_, err = d.ChangeStatus(delivery.PendingPickup)

		require.NoError(t, err)
		assert.Equal(t, delivery.PendingPickup, d.Status())
	})

	t.Run("collecting via status update stamps startedAt once", func(t *testing.T) {
		d := newTestDelivery(t)

		_, err := d.ChangeStatus(delivery.Collecting)
		require.NoError(t, err)
		first := d.StartedAt()
		require.NotNil(t, first)

		_, err = d.ChangeStatus(delivery.EnRouteToDestination)
		require.NoError(t, err)
		_, err = d.ChangeStatus(delivery.Collecting)
		require.NoError(t, err)

		assert.Equal(t, first, d.StartedAt())
	})
}

func TestDelivery_AppendNote(t *testing.T) {
	d := newTestDelivery(t)

	d.AppendNote("A")
	d.AppendNote("   ")
	d.AppendNote("B")

	assert.Equal(t, "A\nB", d.Notes())
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		courierID := kernel.NewUUID()
		created := time.Now().Add(-time.Hour)
		started := created.Add(10 * time.Minute)

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &courierID,
			"origin", "destination", "product",
			decimal.NewFromFloat(12.30), decimal.Zero, nil,
			delivery.EnRouteToDestination, "note",
			created, &started, nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.EnRouteToDestination, d.Status())
		assert.True(t, d.Courier().IsEqual(courierID))
		assert.Equal(t, created, d.CreatedAt())
	})

	t.Run("courier on pending delivery is inconsistent", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &courierID,
			"", "destination", "",
			decimal.NewFromInt(10), decimal.Zero, nil,
			delivery.PendingPickup, "",
			time.Now(), nil, nil, nil,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_Validate_ZeroValue(t *testing.T) {
	var d delivery.Delivery

	assert.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
}
