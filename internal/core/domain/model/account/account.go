// Package account defines the identity and credential shape shared by
// couriers, customers, and stores. The original user hierarchy is flattened
// into this value object referenced by each role-specific aggregate.
package account

import (
	"errors"
	"strings"

	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account bypassed NewAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrNameIsRequired is returned when the display name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when the email is empty or malformed.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPasswordHashIsRequired is returned when no credential hash is supplied.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
)

// Account is an immutable value object holding a user's identity and
// credentials. Password hashing happens outside the domain; Account only
// ever sees the hash.
type Account struct {
	name         string
	email        string
	phone        string
	passwordHash string

	guard guard.ConstructorGuard
}

// NewAccount creates a validated Account. Phone is optional; everything else
// is required and email must contain an "@".
func NewAccount(name, email, phone, passwordHash string) (Account, error) {
	account := Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setName(name),
		account.setEmail(email),
		account.setPasswordHash(passwordHash),
	); err != nil {
		return Account{}, err
	}

	account.phone = strings.TrimSpace(phone)
	return account, nil
}

// Validate ensures the Account was created through NewAccount.
func (a Account) Validate() error {
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// Name returns the display name.
func (a Account) Name() string {
	return a.name
}

// Email returns the unique login email.
func (a Account) Email() string {
	return a.email
}

// Phone returns the contact phone, possibly empty.
func (a Account) Phone() string {
	return a.phone
}

// PasswordHash returns the stored credential hash.
func (a Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = hash
	return nil
}
