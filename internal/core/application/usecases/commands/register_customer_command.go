package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a customer sign-up request.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	password   string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	name, email, phone, password string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		requireField("name", name),
		requireField("email", email),
		requirePassword(password),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	cmd.name = name
	cmd.email = email
	cmd.phone = phone
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to hash.
func (c RegisterCustomerCommand) Password() string {
	return c.password
}

func (c *RegisterCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func requirePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	return nil
}
