package commands

import (
	"context"
	"fmt"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/password"
)

// RegisterCourierCommandHandler registers a new courier. Email and document
// uniqueness are enforced inside the transaction; the password is hashed
// before the aggregate is built.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	hasher     password.Hasher
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(
	uowFactory CourierUoWFactory,
	hasher password.Hasher,
) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command. Returns errs.ErrConflict when
// the email or document is already registered.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) error {
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

	courierRepo := uow.CourierRepository()

	taken, err := courierRepo.ExistsByEmail(ctx, acc.Email())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError(fmt.Sprintf("email %s is already registered", acc.Email()))
	}

	taken, err = courierRepo.ExistsByDocument(ctx, cmd.Document())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError("document is already registered")
	}

	aggregate, err := courier.NewCourier(cmd.CourierID(), acc, cmd.Document(), cmd.LicenseID())
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
