package commands

import (
	"errors"
	"fmt"
	"strings"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a request to register a new delivery in
// PendingPickup status. The store and customer must already exist; the
// courier is assigned later.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	storeID    kernel.UUID
	customerID kernel.UUID

	origin             string
	destination        string
	productDescription string

	fee              decimal.Decimal
	tip              decimal.Decimal
	estimatedMinutes *int
	notes            string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// The destination is required and the fee must be positive; origin, product
// description, tip, estimated minutes, and notes are optional.
func NewCreateDeliveryCommand(
	deliveryID, storeID, customerID kernel.UUID,
	origin, destination, productDescription string,
	fee, tip decimal.Decimal,
	estimatedMinutes *int,
	notes string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStoreID(storeID),
		cmd.setCustomerID(customerID),
		cmd.setDestination(destination),
		cmd.setFee(fee),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	cmd.origin = origin
	cmd.productDescription = productDescription
	cmd.tip = tip
	cmd.estimatedMinutes = estimatedMinutes
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// StoreID returns the originating store's id.
func (c CreateDeliveryCommand) StoreID() kernel.UUID {
	return c.storeID
}

// CustomerID returns the destination customer's id.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Origin returns the pickup address, possibly empty.
func (c CreateDeliveryCommand) Origin() string {
	return c.origin
}

// Destination returns the drop-off address.
func (c CreateDeliveryCommand) Destination() string {
	return c.destination
}

// ProductDescription returns the free-text description of the goods.
func (c CreateDeliveryCommand) ProductDescription() string {
	return c.productDescription
}

// Fee returns the delivery fee.
func (c CreateDeliveryCommand) Fee() decimal.Decimal {
	return c.fee
}

// Tip returns the courier tip.
func (c CreateDeliveryCommand) Tip() decimal.Decimal {
	return c.tip
}

// EstimatedMinutes returns the estimated duration, or nil.
func (c CreateDeliveryCommand) EstimatedMinutes() *int {
	return c.estimatedMinutes
}

// Notes returns the initial operator remarks.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	c.storeID = id
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateDeliveryCommand) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

func (c *CreateDeliveryCommand) setFee(fee decimal.Decimal) error {
	if !fee.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"fee",
			fmt.Errorf("%s is not greater than 0", fee),
		)
	}
	c.fee = fee
	return nil
}
