package commands_test

import (
	"testing"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(
		courierID, "João Souza", "Joao@Example.com", "5511988887777",
		"s3cret", "12345678900", "CNH-1",
	)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("ExistsByEmail", ctx, "joao@example.com").Return(false, nil).Once(),
		courierRepo.On("ExistsByDocument", ctx, "12345678900").Return(false, nil).Once(),
		courierRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	hasher := password.NewBcryptHasher()
	handler := commands.NewRegisterCourierCommandHandler(factory, hasher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := courierRepo.Calls[2]
	registered := addCall.Arguments[1].(*courier.Courier)
	assert.True(t, registered.ID().IsEqual(courierID))
	assert.Equal(t, courier.Offline, registered.Availability())
	require.NoError(t, registered.BadgeID().Validate())
	// the aggregate stores a hash, never the plaintext
	assert.NotEqual(t, "s3cret", registered.Account().PasswordHash())
	assert.True(t, hasher.Verify(registered.Account().PasswordHash(), "s3cret"))
}

func TestRegisterCourierCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand(
		kernel.NewUUID(), "João Souza", "joao@example.com", "",
		"s3cret", "12345678900", "",
	)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("ExistsByEmail", ctx, "joao@example.com").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory, password.NewBcryptHasher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	courierRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterCourierCommandHandler_Handle_DuplicateDocument(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand(
		kernel.NewUUID(), "João Souza", "joao@example.com", "",
		"s3cret", "12345678900", "",
	)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("ExistsByEmail", ctx, "joao@example.com").Return(false, nil).Once(),
		courierRepo.On("ExistsByDocument", ctx, "12345678900").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory, password.NewBcryptHasher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	courierRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewRegisterCourierCommand_MissingFields(t *testing.T) {
	_, err := commands.NewRegisterCourierCommand(
		kernel.NewUUID(), "", "joao@example.com", "", "", "12345678900", "",
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
