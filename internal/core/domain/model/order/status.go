package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct workflow across the kitchen and the cashier.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Paid
//	   │            │           │
//	   └────────────┴───────────┴──> Cancelled
//
// The kitchen may move an order freely between the four pre-payment statuses
// (Ready back to Pending included); only the payment operation reaches Paid,
// and Paid is terminal. Status is a value object that validates transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created by the
	// waiter and has not been picked up by the kitchen.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready to be served and paid.
	// Payment is only possible from this status.
	Ready

	// Cancelled indicates the order was abandoned before payment.
	Cancelled

	// Paid indicates the order has been paid at the cashier.
	// This is a final state with no further transitions allowed.
	Paid
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Cancelled: "Cancelled",
		Paid:      "Paid",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Cancelled: "Cancelled",
		Paid:      "Paid",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for strings that do not name a valid status; matching is
// exact, including case, mirroring the values stored and serialized.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Preparing, Ready, Cancelled, Paid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateKitchenTarget checks whether the status may be set by the kitchen.
//
// Valid targets are Pending, Preparing, Ready and Cancelled; any of the four
// is reachable from any other. Paid is never a kitchen target: it is reachable
// only through payment.
func (s Status) ValidateKitchenTarget() error {
	if s == Paid || s.Validate() != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for a kitchen update", s.String()),
		)
	}
	return nil
}

// ValidatePaidFlag validates the consistency between order status and the
// paid flag.
//
// Rules:
//   - A paid order must be in Paid status
//   - An unpaid order must not be in Paid status
func (s Status) ValidatePaidFlag(paid bool) error {
	if paid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for a paid order", s.String()),
		)
	}

	if !paid && s == Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for an unpaid order", s.String()),
		)
	}

	return nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Ready -> Paid
//
// Any other starting status is rejected: payment requires the kitchen to have
// marked the order Ready first, and a Paid order cannot be paid again.
func (s Status) Pay() (Status, error) {
	if s != Ready {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"order must be Ready before payment",
			fmt.Errorf("status is %s", s.String()),
		)
	}

	return Paid, nil
}
