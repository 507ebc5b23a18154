package commands_test

import (
	"testing"
	"time"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/password"
	"deliveryhub/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loginCourier(t *testing.T, hasher password.Hasher, plain string) *courier.Courier {
	t.Helper()
	hash, err := hasher.Hash(plain)
	require.NoError(t, err)
	acc, err := account.NewAccount("João Souza", "joao@example.com", "", hash)
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), acc, "12345678900", "")
	require.NoError(t, err)
	return c
}

func TestLoginCommandHandler_Handle_CourierSuccess(t *testing.T) {
	ctx := t.Context()
	hasher := password.NewBcryptHasher()
	issuer := token.NewService("test-signing-key", "deliveryhub", time.Hour)

	testCourier := loginCourier(t, hasher, "s3cret")
	cmd, err := commands.NewLoginCommand("Joao@Example.com", "s3cret")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetByEmail", ctx, "joao@example.com").Return(testCourier, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginCommandHandler(factory, hasher, issuer)
	signed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	claims, err := issuer.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, testCourier.ID().String(), claims.Subject)
	assert.Equal(t, commands.RoleCourier, claims.Role)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	hasher := password.NewBcryptHasher()
	issuer := token.NewService("test-signing-key", "deliveryhub", time.Hour)

	testCourier := loginCourier(t, hasher, "s3cret")
	cmd, err := commands.NewLoginCommand("joao@example.com", "not-the-password")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetByEmail", ctx, "joao@example.com").Return(testCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginCommandHandler(factory, hasher, issuer)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	hasher := password.NewBcryptHasher()
	issuer := token.NewService("test-signing-key", "deliveryhub", time.Hour)

	cmd, err := commands.NewLoginCommand("nobody@example.com", "whatever")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	customerRepo := new(MockCustomerRepository)
	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, errs.ErrObjectNotFound).
			Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, errs.ErrObjectNotFound).
			Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, errs.ErrObjectNotFound).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginCommandHandler(factory, hasher, issuer)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}
