package commands

import (
	"context"
	"errors"
	"strings"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/password"
)

// ErrInvalidCredentials is returned on any authentication failure, whether
// the email is unknown or the password is wrong. Callers get no hint which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Account roles carried in issued tokens.
const (
	RoleCourier  = "courier"
	RoleCustomer = "customer"
	RoleStore    = "store"
)

// TokenIssuer signs an access token for an authenticated subject.
// Satisfied by token.Service.
type TokenIssuer interface {
	Generate(subjectID, role string) (string, error)
}

// LoginCommandHandler authenticates an email/password pair against couriers,
// customers, and stores, in that order, and issues a signed token naming the
// subject and its role.
type LoginCommandHandler struct {
	uowFactory AccountsUoWFactory
	hasher     password.Hasher
	issuer     TokenIssuer
}

// NewLoginCommandHandler creates a handler for authentication.
func NewLoginCommandHandler(
	uowFactory AccountsUoWFactory,
	hasher password.Hasher,
	issuer TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle processes the login command, returning the signed token on success
// and ErrInvalidCredentials on any mismatch.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	email := strings.ToLower(strings.TrimSpace(cmd.Email()))

	subjectID, role, acc, err := h.findAccount(ctx, uow, email)
	if err != nil {
		return "", err
	}

	if !h.hasher.Verify(acc.PasswordHash(), cmd.Password()) {
		return "", ErrInvalidCredentials
	}

	token, err := h.issuer.Generate(subjectID, role)
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return token, nil
}

func (h LoginCommandHandler) findAccount(
	ctx context.Context,
	uow AccountsUoW,
	email string,
) (string, string, account.Account, error) {
	if c, err := uow.CourierRepository().GetByEmail(ctx, email); err == nil {
		return c.ID().String(), RoleCourier, c.Account(), nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", "", account.Account{}, err
	}

	if c, err := uow.CustomerRepository().GetByEmail(ctx, email); err == nil {
		return c.ID().String(), RoleCustomer, c.Account(), nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", "", account.Account{}, err
	}

	if s, err := uow.StoreRepository().GetByEmail(ctx, email); err == nil {
		return s.ID().String(), RoleStore, s.Account(), nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", "", account.Account{}, err
	}

	return "", "", account.Account{}, ErrInvalidCredentials
}
