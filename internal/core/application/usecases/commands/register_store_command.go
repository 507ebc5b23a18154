package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var ErrRegisterStoreCommandIsNotConstructed = errors.New(
	"RegisterStoreCommand must be created via NewRegisterStoreCommand constructor",
)

// RegisterStoreCommand represents a store sign-up request. The address is the
// default pickup origin for deliveries the store creates.
type RegisterStoreCommand struct { //nolint:recvcheck //using for validation
	storeID  kernel.UUID
	name     string
	email    string
	phone    string
	password string
	address  string

	guard guard.ConstructorGuard
}

// NewRegisterStoreCommand creates a command to register a store.
func NewRegisterStoreCommand(
	storeID kernel.UUID,
	name, email, phone, password, address string,
) (RegisterStoreCommand, error) {
	cmd := RegisterStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		requireField("name", name),
		requireField("email", email),
		requireField("address", address),
		requirePassword(password),
	); err != nil {
		return RegisterStoreCommand{}, err
	}

	cmd.name = name
	cmd.email = email
	cmd.phone = phone
	cmd.password = password
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterStoreCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStoreCommandIsNotConstructed)
}

// StoreID returns the identifier for the new store.
func (c RegisterStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the display name.
func (c RegisterStoreCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterStoreCommand) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c RegisterStoreCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to hash.
func (c RegisterStoreCommand) Password() string {
	return c.password
}

// Address returns the pickup address.
func (c RegisterStoreCommand) Address() string {
	return c.address
}

func (c *RegisterStoreCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeID = id
	return nil
}
