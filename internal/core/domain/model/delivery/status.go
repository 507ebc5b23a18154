package delivery

import (
	"fmt"

	"deliveryhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	PendingPickup ──> Collecting ──> EnRouteToDestination ──> ArrivedAtDestination ──> Delivered
//	       │               │                   │                        │
//	       └───────────────┴───────────────────┴────────────────────────┴──> Cancelled / Problem
//
// The policy between non-terminal statuses is deliberately permissive: the
// operator apps report whatever the courier actually did, so any valid status
// may be set from any non-terminal status. What the table does enforce is
// that Delivered, Cancelled, and Problem are terminal: once reached, no
// transition (including re-applying the same status) is accepted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingPickup is the initial status: created, waiting for a courier.
	PendingPickup

	// Collecting means a courier is engaged and picking the order up.
	Collecting

	// EnRouteToDestination means the product was collected and is moving.
	EnRouteToDestination

	// ArrivedAtDestination means the courier reached the drop-off address.
	ArrivedAtDestination

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is a terminal status for deliveries called off.
	Cancelled

	// Problem is a terminal status for failed deliveries (recipient absent,
	// wrong address, and similar).
	Problem
)

// activeStatuses are the statuses during which a courier is executing the
// delivery. A courier may hold at most one delivery in this set.
var activeStatuses = []Status{Collecting, EnRouteToDestination, ArrivedAtDestination}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		PendingPickup:        "PendingPickup",
		Collecting:           "Collecting",
		EnRouteToDestination: "EnRouteToDestination",
		ArrivedAtDestination: "ArrivedAtDestination",
		Delivered:            "Delivered",
		Cancelled:            "Cancelled",
		Problem:              "Problem",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPickup:        "PendingPickup",
		Collecting:           "Collecting",
		EnRouteToDestination: "EnRouteToDestination",
		ArrivedAtDestination: "ArrivedAtDestination",
		Delivered:            "Delivered",
		Cancelled:            "Cancelled",
		Problem:              "Problem",
	}
}

// transitionTable maps each status to the statuses reachable from it.
// Terminal statuses map to nothing.
func transitionTable() map[Status][]Status {
	anyValid := []Status{
		PendingPickup, Collecting, EnRouteToDestination,
		ArrivedAtDestination, Delivered, Cancelled, Problem,
	}
	return map[Status][]Status{
		PendingPickup:        anyValid,
		Collecting:           anyValid,
		EnRouteToDestination: anyValid,
		ArrivedAtDestination: anyValid,
		Delivered:            nil,
		Cancelled:            nil,
		Problem:              nil,
	}
}

// Effect describes the courier-side consequences of entering a status. The
// lifecycle handlers read it off the table instead of branching on the new
// status value.
type Effect struct {
	// MarkStarted sets the delivery's started timestamp if not already set.
	MarkStarted bool
	// MarkCompleted sets the delivery's completed timestamp.
	MarkCompleted bool
	// MarkCancelled sets the delivery's cancelled timestamp.
	MarkCancelled bool
	// ReleaseCourier returns the assigned courier to Available.
	ReleaseCourier bool
	// CountCompletion increments the courier's completed-delivery counter.
	CountCompletion bool
}

// enterEffects is the side-effect half of the transition table.
func enterEffects() map[Status]Effect {
	return map[Status]Effect{
		Collecting: {MarkStarted: true},
		Delivered:  {MarkCompleted: true, ReleaseCourier: true, CountCompletion: true},
		Cancelled:  {MarkCancelled: true, ReleaseCourier: true},
		Problem:    {MarkCancelled: true, ReleaseCourier: true},
	}
}

// StatusFromString parses the textual form used on the wire and in storage.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Problem
}

// IsActive reports whether a courier is currently executing the delivery.
func (s Status) IsActive() bool {
	for _, active := range activeStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// CanTransitionTo checks the transition table. Returns an InvalidStateError
// when next is unreachable from s, which covers every attempt to leave (or
// re-enter) a terminal status.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range transitionTable()[s] {
		if next == allowed {
			return nil
		}
	}

	return errs.NewInvalidStateErrorWithCause(
		"status transition is not allowed",
		fmt.Errorf("cannot move from %s to %s", s, next),
	)
}

// EnterEffect returns the side effects of entering s. Statuses without
// registered effects return the zero Effect.
func (s Status) EnterEffect() Effect {
	return enterEffects()[s]
}
