package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery bypassed its constructors.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDestinationIsRequired is returned when the drop-off address is empty.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrCourierAlreadyAssigned is returned on a second assignment attempt.
	ErrCourierAlreadyAssigned = errs.NewInvalidStateError("delivery already has a courier assigned")
)

// Delivery is the aggregate root of the lifecycle engine. It references the
// originating store and the destination customer by id, optionally an assigned
// courier, and tracks the status lifecycle with its timestamps.
//
// Invariants:
//   - store id, customer id, fee, and addresses are immutable after creation
//   - the courier id is set exactly once, by AssignCourier
//   - a delivery with a courier is never in PendingPickup
//   - at most one of completedAt/cancelledAt is ever set; startedAt at most once
//   - no mutation is accepted once the status is terminal
//   - notes are append-only
type Delivery struct {
	id         kernel.UUID
	storeID    kernel.UUID
	customerID kernel.UUID
	courierID  *kernel.UUID

	origin             string
	destination        string
	productDescription string

	fee              decimal.Decimal
	tip              decimal.Decimal
	estimatedMinutes *int

	status Status
	notes  string

	createdAt   time.Time
	startedAt   *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in PendingPickup with createdAt set to now.
// Origin, product description, notes, and estimatedMinutes are optional; the
// fee must be positive and the tip non-negative.
func NewDelivery(
	id, storeID, customerID kernel.UUID,
	origin, destination, productDescription string,
	fee, tip decimal.Decimal,
	estimatedMinutes *int,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		status:    PendingPickup,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setStoreID(storeID),
		d.setCustomerID(customerID),
		d.setDestination(destination),
		d.setFee(fee),
		d.setTip(tip),
		d.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return nil, err
	}

	d.origin = strings.TrimSpace(origin)
	d.productDescription = strings.TrimSpace(productDescription)
	d.notes = strings.TrimSpace(notes)
	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence, including its
// status, courier assignment, notes, and timestamps.
func RestoreDelivery(
	id, storeID, customerID kernel.UUID,
	courierID *kernel.UUID,
	origin, destination, productDescription string,
	fee, tip decimal.Decimal,
	estimatedMinutes *int,
	status Status,
	notes string,
	createdAt time.Time,
	startedAt, completedAt, cancelledAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setStoreID(storeID),
		d.setCustomerID(customerID),
		d.setDestination(destination),
		d.setFee(fee),
		d.setTip(tip),
		d.setEstimatedMinutes(estimatedMinutes),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		if status == PendingPickup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"status",
				fmt.Errorf("a delivery with a courier cannot be %s", status),
			)
		}
		cID := *courierID
		d.courierID = &cID
	}

	d.origin = origin
	d.productDescription = productDescription
	d.status = status
	d.notes = notes
	d.createdAt = createdAt
	d.startedAt = copyTime(startedAt)
	d.completedAt = copyTime(completedAt)
	d.cancelledAt = copyTime(cancelledAt)
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares deliveries by id.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// StoreID returns the originating store's id.
func (d *Delivery) StoreID() kernel.UUID {
	return d.storeID
}

// CustomerID returns the destination customer's id.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// Courier returns the assigned courier's id, or nil before assignment.
func (d *Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// Origin returns the pickup address, possibly empty.
func (d *Delivery) Origin() string {
	return d.origin
}

// Destination returns the drop-off address.
func (d *Delivery) Destination() string {
	return d.destination
}

// ProductDescription returns the free-text description of the goods.
func (d *Delivery) ProductDescription() string {
	return d.productDescription
}

// Fee returns the delivery fee.
func (d *Delivery) Fee() decimal.Decimal {
	return d.fee
}

// Tip returns the courier tip, zero when none was offered.
func (d *Delivery) Tip() decimal.Decimal {
	return d.tip
}

// EstimatedMinutes returns the estimated duration, or nil when not set.
func (d *Delivery) EstimatedMinutes() *int {
	return d.estimatedMinutes
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Notes returns the accumulated operator remarks.
func (d *Delivery) Notes() string {
	return d.notes
}

// CreatedAt returns the construction timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// StartedAt returns when a courier first engaged, or nil.
func (d *Delivery) StartedAt() *time.Time {
	return copyTime(d.startedAt)
}

// CompletedAt returns the terminal-success timestamp, or nil.
func (d *Delivery) CompletedAt() *time.Time {
	return copyTime(d.completedAt)
}

// CancelledAt returns the terminal-failure timestamp, or nil.
func (d *Delivery) CancelledAt() *time.Time {
	return copyTime(d.cancelledAt)
}

// AssignCourier binds a courier to the delivery and moves it to Collecting,
// stamping startedAt. Only a PendingPickup delivery without a courier accepts
// assignment; the courier-side preconditions (availability, no other active
// delivery) are the caller's responsibility.
func (d *Delivery) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if d.courierID != nil {
		return ErrCourierAlreadyAssigned
	}

	if d.status != PendingPickup {
		return errs.NewInvalidStateErrorWithCause(
			"delivery is not awaiting pickup",
			fmt.Errorf("status is %s", d.status),
		)
	}

	now := time.Now()
	d.courierID = &courierID
	d.status = Collecting
	d.startedAt = &now
	return nil
}

// ChangeStatus applies a transition from the table and the delivery-side
// timestamps of its effect, returning the effect so the caller can apply the
// courier-side half. Transitions out of terminal statuses are rejected with
// an InvalidStateError and leave the delivery untouched. A delivery with a
// courier cannot return to PendingPickup; the table is permissive between
// non-terminal statuses, but this combination would persist a state the
// restore constructor refuses to load.
func (d *Delivery) ChangeStatus(next Status) (Effect, error) {
	if err := d.status.CanTransitionTo(next); err != nil {
		return Effect{}, err
	}

	if next == PendingPickup && d.courierID != nil {
		return Effect{}, errs.NewInvalidStateErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("a delivery with a courier cannot return to %s", PendingPickup),
		)
	}

	effect := next.EnterEffect()
	now := time.Now()

	d.status = next
	if effect.MarkStarted && d.startedAt == nil {
		d.startedAt = &now
	}
	if effect.MarkCompleted {
		d.completedAt = &now
	}
	if effect.MarkCancelled {
		d.cancelledAt = &now
	}

	return effect, nil
}

// AppendNote concatenates a remark onto the notes log with a newline
// separator. Blank notes are ignored; existing notes are never replaced.
func (d *Delivery) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if d.notes == "" {
		d.notes = note
		return
	}
	d.notes = d.notes + "\n" + note
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	d.storeID = id
	return nil
}

func (d *Delivery) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	d.customerID = id
	return nil
}

func (d *Delivery) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return ErrDestinationIsRequired
	}
	d.destination = destination
	return nil
}

func (d *Delivery) setFee(fee decimal.Decimal) error {
	if !fee.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"fee",
			fmt.Errorf("%s is not greater than 0", fee),
		)
	}
	d.fee = fee
	return nil
}

func (d *Delivery) setTip(tip decimal.Decimal) error {
	if tip.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"tip",
			fmt.Errorf("%s is negative", tip),
		)
	}
	d.tip = tip
	return nil
}

func (d *Delivery) setEstimatedMinutes(minutes *int) error {
	if minutes == nil {
		return nil
	}
	if *minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimated minutes",
			fmt.Errorf("%d is not greater than 0", *minutes),
		)
	}
	m := *minutes
	d.estimatedMinutes = &m
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
