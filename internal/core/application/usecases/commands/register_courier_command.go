package commands

import (
	"errors"
	"strings"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a courier sign-up request. The plaintext
// password travels only as far as the handler, which hashes it before the
// domain ever sees it.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	email     string
	phone     string
	password  string
	document  string
	licenseID string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier.
// Name, email, password, and document are required; phone and licenseID are
// optional.
func NewRegisterCourierCommand(
	courierID kernel.UUID,
	name, email, phone, password, document, licenseID string,
) (RegisterCourierCommand, error) {
	cmd := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setPassword(password),
		requireField("name", name),
		requireField("email", email),
		requireField("document", document),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	cmd.name = name
	cmd.email = email
	cmd.phone = phone
	cmd.document = document
	cmd.licenseID = licenseID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the display name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterCourierCommand) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c RegisterCourierCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to hash.
func (c RegisterCourierCommand) Password() string {
	return c.password
}

// Document returns the national id document (CPF).
func (c RegisterCourierCommand) Document() string {
	return c.document
}

// LicenseID returns the driver's license number, possibly empty.
func (c RegisterCourierCommand) LicenseID() string {
	return c.licenseID
}

func (c *RegisterCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *RegisterCourierCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
