package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetCashierOrdersQueryIsNotConstructed = errors.New(
	"GetCashierOrdersQuery must be created via NewGetCashierOrdersQuery constructor",
)

// GetCashierOrdersQuery retrieves orders for the cashier register.
// Both filters are optional: a nil seat number matches every seat, and a nil
// status falls back to the register's default view of Ready and Paid orders.
type GetCashierOrdersQuery struct { //nolint:recvcheck //using for validation
	seatNumber *string
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetCashierOrdersQuery creates a query for the cashier register.
// A provided status must be a known one.
func NewGetCashierOrdersQuery(seatNumber *string, status *order.Status) (GetCashierOrdersQuery, error) {
	query := GetCashierOrdersQuery{
		seatNumber: seatNumber,
		guard:      guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetCashierOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCashierOrdersQueryIsNotConstructed if validation fails.
func (q GetCashierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCashierOrdersQueryIsNotConstructed)
}

// SeatNumber returns the seat filter, or nil when every seat matches.
func (q GetCashierOrdersQuery) SeatNumber() *string {
	return q.seatNumber
}

// Status returns the status filter, or nil for the default Ready/Paid view.
func (q GetCashierOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetCashierOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}
