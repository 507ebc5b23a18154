package courier

import (
	"errors"
	"fmt"
	"strings"

	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier bypassed its constructors.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrDocumentIsRequired is returned when the national id document is empty.
	ErrDocumentIsRequired = errs.NewValueIsRequiredError("document")

	ratingScoreMin = decimal.NewFromInt(1)
	ratingScoreMax = decimal.NewFromInt(5)
)

// Courier is the delivery-performing aggregate. Besides identity and
// credentials it owns the availability state, the QR badge identifier, and
// two counters that deliberately diverge:
//
//   - completedDeliveries increments when a delivery transitions to Delivered;
//   - ratingCount is the denominator of the aggregate rating and increments
//     only when a rating is submitted.
//
// A delivery can complete without a rating and a rating can arrive without a
// completion, so neither counter can stand in for the other.
type Courier struct {
	id      kernel.UUID
	account account.Account

	document  string
	licenseID string
	badgeID   kernel.UUID

	availability        Availability
	rating              decimal.Decimal
	ratingCount         int
	completedDeliveries int

	guard guard.ConstructorGuard
}

// NewCourier registers a new courier: Offline, unrated, with a fresh QR badge
// id. The document (CPF) is required; licenseID is optional.
func NewCourier(id kernel.UUID, acc account.Account, document, licenseID string) (*Courier, error) {
	c := &Courier{
		badgeID:      kernel.NewUUID(),
		availability: Offline,
		rating:       decimal.Zero,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setAccount(acc),
		c.setDocument(document),
	); err != nil {
		return nil, err
	}

	c.licenseID = strings.TrimSpace(licenseID)
	return c, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	acc account.Account,
	document, licenseID string,
	badgeID kernel.UUID,
	availability Availability,
	rating decimal.Decimal,
	ratingCount, completedDeliveries int,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setAccount(acc),
		c.setDocument(document),
		badgeID.Validate(),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	if rating.IsNegative() || rating.GreaterThan(ratingScoreMax) {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	if ratingCount < 0 {
		return nil, errs.NewValueIsInvalidError("rating count")
	}
	if completedDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("completed deliveries")
	}

	c.licenseID = licenseID
	c.badgeID = badgeID
	c.availability = availability
	c.rating = rating
	c.ratingCount = ratingCount
	c.completedDeliveries = completedDeliveries
	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares couriers by id.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Account returns the courier's identity and credentials.
func (c *Courier) Account() account.Account {
	return c.account
}

// Document returns the national id document (CPF).
func (c *Courier) Document() string {
	return c.document
}

// LicenseID returns the driver's license number, possibly empty.
func (c *Courier) LicenseID() string {
	return c.licenseID
}

// BadgeID returns the QR badge identifier used for courier identification.
func (c *Courier) BadgeID() kernel.UUID {
	return c.badgeID
}

// Availability returns the courier's current working state.
func (c *Courier) Availability() Availability {
	return c.availability
}

// IsAvailable reports whether the courier can accept an assignment.
func (c *Courier) IsAvailable() bool {
	return c.availability == Available
}

// Rating returns the aggregate rating, in [0.00, 5.00] with two decimals.
func (c *Courier) Rating() decimal.Decimal {
	return c.rating
}

// RatingCount returns how many ratings were submitted.
func (c *Courier) RatingCount() int {
	return c.ratingCount
}

// CompletedDeliveries returns how many deliveries reached Delivered.
func (c *Courier) CompletedDeliveries() int {
	return c.completedDeliveries
}

// SetAvailability changes the courier's working state.
func (c *Courier) SetAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	c.availability = availability
	return nil
}

// Release returns the courier to Available. Invoked by the lifecycle engine
// when an assigned delivery reaches a terminal status.
func (c *Courier) Release() {
	c.availability = Available
}

// RecordCompletedDelivery increments the completed-delivery counter. It does
// not touch the rating counters.
func (c *Courier) RecordCompletedDelivery() {
	c.completedDeliveries++
}

// SubmitRating folds a new score into the running weighted average:
//
//	newAverage = (currentAverage*ratingCount + score) / (ratingCount + 1)
//
// rounded half-up to two decimal places. Scores must lie in [1.0, 5.0];
// the stored average may still be 0.00 before any rating arrives.
func (c *Courier) SubmitRating(score decimal.Decimal) error {
	if score.LessThan(ratingScoreMin) || score.GreaterThan(ratingScoreMax) {
		return errs.NewValueIsOutOfRangeError("score", score, 1, 5)
	}

	count := decimal.NewFromInt(int64(c.ratingCount))
	total := c.rating.Mul(count).Add(score)
	c.rating = total.DivRound(count.Add(decimal.NewFromInt(1)), 8).Round(2)
	c.ratingCount++
	return nil
}

// RegenerateBadge replaces the QR badge identifier and returns the new one.
func (c *Courier) RegenerateBadge() kernel.UUID {
	c.badgeID = kernel.NewUUID()
	return c.badgeID
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setAccount(acc account.Account) error {
	if err := acc.Validate(); err != nil {
		return fmt.Errorf("courier account: %w", err)
	}
	c.account = acc
	return nil
}

func (c *Courier) setDocument(document string) error {
	document = strings.TrimSpace(document)
	if document == "" {
		return ErrDocumentIsRequired
	}
	c.document = document
	return nil
}
