package commands

import (
	"context"
	"fmt"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/password"
)

// RegisterCustomerCommandHandler registers a new customer with a unique email.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	hasher     password.Hasher
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	hasher password.Hasher,
) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command. Returns errs.ErrConflict when
// the email is already registered.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	taken, err := customerRepo.ExistsByEmail(ctx, acc.Email())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError(fmt.Sprintf("email %s is already registered", acc.Email()))
	}

	aggregate, err := customer.NewCustomer(cmd.CustomerID(), acc)
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
