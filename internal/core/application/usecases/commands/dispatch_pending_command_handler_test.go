package commands_test

import (
	"sync"
	"testing"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchPendingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingCommand()

	testDelivery := pendingDelivery(t)
	free := availableCourier(t)
	occupied := availableCourier(t)

	inFlight := pendingDelivery(t)
	require.NoError(t, inFlight.AssignCourier(occupied.ID()))

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		deliveryRepo.On("GetOldestPending", ctx).Return(testDelivery, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).
			Return([]*courier.Courier{occupied, free}, nil).
			Once(),
		deliveryRepo.On("GetActiveByCourier", ctx, occupied.ID()).
			Return([]*delivery.Delivery{inFlight}, nil).
			Once(),
		// once while filtering candidates, once re-checking the winner
		// under its assignment lock
		deliveryRepo.On("GetActiveByCourier", ctx, free.ID()).
			Return([]*delivery.Delivery{}, nil).
			Twice(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingCommandHandler(factory, keylock.NewKeyedMutex())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Collecting, testDelivery.Status())
	assert.True(t, testDelivery.Courier().IsEqual(free.ID()))
	courierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDispatchPendingCommandHandler_Handle_NoPendingDeliveries(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingCommand()

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		deliveryRepo.On("GetOldestPending", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingCommandHandler(factory, keylock.NewKeyedMutex())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoPendingDeliveries)
}

func TestDispatchPendingCommandHandler_Handle_EveryCourierOccupied(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingCommand()

	testDelivery := pendingDelivery(t)
	occupied := availableCourier(t)
	inFlight := pendingDelivery(t)
	require.NoError(t, inFlight.AssignCourier(occupied.ID()))

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		deliveryRepo.On("GetOldestPending", ctx).Return(testDelivery, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{occupied}, nil).Once(),
		deliveryRepo.On("GetActiveByCourier", ctx, occupied.ID()).
			Return([]*delivery.Delivery{inFlight}, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingCommandHandler(factory, keylock.NewKeyedMutex())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoAvailableCouriers)
	assert.Equal(t, delivery.PendingPickup, testDelivery.Status())
}

// Auto-dispatch racing an explicit assignment for the same courier: the
// shared per-courier lock lets exactly one of them through, never both.
func TestDispatchPendingCommandHandler_Handle_RacingExplicitAssignment(t *testing.T) {
	ctx := t.Context()
	const rounds = 50

	for range rounds {
		testCourier := availableCourier(t)
		oldest := pendingDelivery(t)
		target := pendingDelivery(t)
		state := &fakeState{
			deliveries: map[kernel.UUID]*delivery.Delivery{
				oldest.ID(): oldest,
				target.ID(): target,
			},
			couriers: map[kernel.UUID]*courier.Courier{testCourier.ID(): testCourier},
		}

		locks := keylock.NewKeyedMutex()
		dispatchHandler := commands.NewDispatchPendingCommandHandler(fakeUoWFactory{state}, locks)
		assignHandler := commands.NewAssignCourierCommandHandler(fakeUoWFactory{state}, locks)

		var (
			wg          sync.WaitGroup
			dispatchErr error
			assignErr   error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			dispatchErr = dispatchHandler.Handle(ctx, commands.NewDispatchPendingCommand())
		}()
		go func() {
			defer wg.Done()
			cmd, err := commands.NewAssignCourierCommand(target.ID(), testCourier.ID())
			require.NoError(t, err)
			assignErr = assignHandler.Handle(ctx, cmd)
		}()
		wg.Wait()

		succeeded := 0
		if dispatchErr == nil {
			succeeded++
		} else {
			require.ErrorIs(t, dispatchErr, commands.ErrNoAvailableCouriers)
		}
		if assignErr == nil {
			succeeded++
		} else {
			require.ErrorIs(t, assignErr, errs.ErrConflict)
		}
		require.Equal(t, 1, succeeded)

		active := 0
		for _, d := range state.deliveries {
			if d.Courier() != nil && d.Courier().IsEqual(testCourier.ID()) && d.Status().IsActive() {
				active++
			}
		}
		require.Equal(t, 1, active, "courier must hold at most one active delivery")
	}
}

func TestDispatchPendingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DispatchPendingCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewDispatchPendingCommandHandler(factory, keylock.NewKeyedMutex())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDispatchPendingCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
