package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsPaid is the reason reported when any mutation is attempted on a
	// paid order. Paid is the terminal state of the lifecycle.
	ErrOrderIsPaid = errors.New("order is already paid")
)

// Order represents a guest order in the restaurant. It is the aggregate root
// that owns the order's line items and manages the lifecycle from creation by
// the waiter through kitchen preparation to payment at the cashier.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have at least one line item
//   - The total always equals the sum of quantity × unit price over the line items
//   - A paid order is in Paid status, and vice versa
//   - A paid order can no longer be mutated
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id kernel.UUID

	// seatNumber is a free-form seat or table label, empty when not given
	seatNumber string

	status      Status
	isPaid      bool
	totalAmount float64
	createdAt   time.Time
	items       []LineItem

	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid order for a fresh request.
//
// The order starts in Pending status, unpaid, with its total computed from the
// given line items. The item list must not be empty and every item must be a
// properly constructed LineItem.
func NewOrder(id kernel.UUID, seatNumber string, items []LineItem) (*Order, error) {
	o := &Order{
		seatNumber:    seatNumber,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.recalculateTotal()
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Status validity and the paid-flag consistency rule are enforced, and the
// total is recomputed from the line items rather than trusted, so a stale
// stored total can never survive a round-trip.
func RestoreOrder(
	id kernel.UUID,
	seatNumber string,
	status Status,
	isPaid bool,
	createdAt time.Time,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		seatNumber:    seatNumber,
		isPaid:        isPaid,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status, isPaid),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.recalculateTotal()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SeatNumber returns the seat label the waiter recorded, empty when none.
func (o *Order) SeatNumber() string {
	return o.seatNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether the order has been paid.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// TotalAmount returns the order total, always equal to the sum of the line
// item subtotals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the order's line items in creation order.
// The returned slice is a copy; line items themselves are immutable.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// ChangeStatus moves the order to a new status on behalf of the kitchen.
//
// The target must be one of Pending, Preparing, Ready or Cancelled; movement
// among those four is unrestricted. A paid order rejects any change: Paid is
// terminal.
func (o *Order) ChangeStatus(newStatus Status) error {
	if o.isPaid || o.status == Paid {
		return errs.NewStateIsInvalidErrorWithCause("paid order cannot change status", ErrOrderIsPaid)
	}

	if err := newStatus.ValidateKitchenTarget(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Pay marks the order as paid.
//
// The order must be in Ready status and not yet paid. On success the paid flag
// is set and the status becomes Paid, the terminal state.
func (o *Order) Pay() error {
	if o.isPaid {
		return errs.NewStateIsInvalidErrorWithCause("order is already paid", ErrOrderIsPaid)
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.isPaid = true
	return nil
}

// recalculateTotal derives the total from the line items.
// Called whenever the item collection is established; items are immutable in
// between, so the stored total can never drift from them.
func (o *Order) recalculateTotal() {
	total := 0.0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	o.totalAmount = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status, isPaid bool) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidatePaidFlag(isPaid); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
