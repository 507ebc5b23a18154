// Package customer contains the Customer aggregate, the party that receives
// deliveries and submits courier ratings.
package customer

import (
	"errors"
	"fmt"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer bypassed its constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the receiving party of a delivery.
type Customer struct {
	id      kernel.UUID
	account account.Account

	guard guard.ConstructorGuard
}

// NewCustomer registers a new customer.
func NewCustomer(id kernel.UUID, acc account.Account) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setAccount(acc),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, acc account.Account) (*Customer, error) {
	return NewCustomer(id, acc)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares customers by id.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Account returns the customer's identity and credentials.
func (c *Customer) Account() account.Account {
	return c.account
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setAccount(acc account.Account) error {
	if err := acc.Validate(); err != nil {
		return fmt.Errorf("customer account: %w", err)
	}
	c.account = acc
	return nil
}
