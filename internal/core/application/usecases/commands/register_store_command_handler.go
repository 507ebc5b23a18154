package commands

import (
	"context"
	"fmt"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/store"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/password"
)

// RegisterStoreCommandHandler registers a new store with a unique email.
type RegisterStoreCommandHandler struct {
	uowFactory StoreUoWFactory
	hasher     password.Hasher
}

// NewRegisterStoreCommandHandler creates a handler for store registration.
func NewRegisterStoreCommandHandler(
	uowFactory StoreUoWFactory,
	hasher password.Hasher,
) RegisterStoreCommandHandler {
	return RegisterStoreCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command. Returns errs.ErrConflict when
// the email is already registered.
func (h RegisterStoreCommandHandler) Handle(ctx context.Context, cmd RegisterStoreCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.Name(), cmd.Email(), cmd.Phone(), hash)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	storeRepo := uow.StoreRepository()

	taken, err := storeRepo.ExistsByEmail(ctx, acc.Email())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError(fmt.Sprintf("email %s is already registered", acc.Email()))
	}

	aggregate, err := store.NewStore(cmd.StoreID(), acc, cmd.Address())
	if err != nil {
		return err
	}

	if err = storeRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
