// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliveryhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// StoreRepoFactory provides access to the store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// CourierUoW manages transactions for courier-only operations
	// (availability changes, ratings, registration, badge regeneration).
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// StoreUoW manages transactions for store-only operations.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// CreateDeliveryUoW manages the delivery-creation transaction. Creation
	// resolves the originating store and destination customer, so it spans
	// three repositories.
	CreateDeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		StoreRepoFactory
		CustomerRepoFactory
	}

	// CreateDeliveryUoWFactory creates new delivery-creation unit of work instances.
	CreateDeliveryUoWFactory interface {
		Create() CreateDeliveryUoW
	}

	// UoW manages transactions across delivery and courier aggregates.
	// Used by the lifecycle commands that coordinate both sides: assignment,
	// status updates, and dispatching.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// AccountsUoW spans every aggregate that can authenticate. Login resolves
	// an email against couriers, customers, and stores in that order.
	AccountsUoW interface {
		TxManager
		CourierRepoFactory
		CustomerRepoFactory
		StoreRepoFactory
	}

	// AccountsUoWFactory creates new account-lookup unit of work instances.
	AccountsUoWFactory interface {
		Create() AccountsUoW
	}
)
