// Package store contains the Store aggregate, the merchant that originates
// deliveries.
package store

import (
	"errors"
	"fmt"
	"strings"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var (
	// ErrStoreIsNotConstructed is returned when a Store bypassed its constructors.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

	// ErrAddressIsRequired is returned when the pickup address is empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Store is the merchant aggregate. Its address serves as the default pickup
// origin for deliveries it creates.
type Store struct {
	id      kernel.UUID
	account account.Account
	address string

	guard guard.ConstructorGuard
}

// NewStore registers a new store. The pickup address is required.
func NewStore(id kernel.UUID, acc account.Account, address string) (*Store, error) {
	s := &Store{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setAccount(acc),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a store from persistence.
func RestoreStore(id kernel.UUID, acc account.Account, address string) (*Store, error) {
	return NewStore(id, acc, address)
}

// Validate ensures the Store was created through a constructor.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// IsEqual compares stores by id.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Account returns the store's identity and credentials.
func (s *Store) Account() account.Account {
	return s.account
}

// Address returns the pickup address.
func (s *Store) Address() string {
	return s.address
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setAccount(acc account.Account) error {
	if err := acc.Validate(); err != nil {
		return fmt.Errorf("store account: %w", err)
	}
	s.account = acc
	return nil
}

func (s *Store) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	s.address = address
	return nil
}
