package courier

import (
	"fmt"

	"deliveryhub/internal/pkg/errs"
)

// Availability represents a courier's working state. It is changed either by
// the courier (going online, pausing) or by the lifecycle engine when a
// delivery reaches a terminal status.
//
// Assignment does not flip a courier to EnRoute or Busy: the courier
// deliberately stays Available, and the active-delivery check blocks a
// second assignment. EnRoute, Busy, and Paused exist for courier-initiated
// updates.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Offline means the courier is disconnected. This is the default after
	// registration.
	Offline

	// Available means the courier is online and can accept deliveries.
	Available

	// EnRoute means the courier reported being out on a delivery.
	EnRoute

	// Busy means the courier is online but occupied.
	Busy

	// Paused means the courier stepped away temporarily.
	Paused

	// Deactivated means the courier's registration was disabled.
	Deactivated
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Offline:             "Offline",
		Available:           "Available",
		EnRoute:             "EnRoute",
		Busy:                "Busy",
		Paused:              "Paused",
		Deactivated:         "Deactivated",
	}
}

func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as it's invalid
	return map[Availability]string{
		Offline:     "Offline",
		Available:   "Available",
		EnRoute:     "EnRoute",
		Busy:        "Busy",
		Paused:      "Paused",
		Deactivated: "Deactivated",
	}
}

// AvailabilityFromString parses the textual form used on the wire and in storage.
func AvailabilityFromString(s string) (Availability, error) {
	for availability, name := range getValidAvailabilityStrings() {
		if name == s {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability",
		fmt.Errorf("%q is not a valid courier availability", s),
	)
}

// Validate checks that the Availability is one of the defined values.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability",
			fmt.Errorf("%d is not a valid availability", a),
		)
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
