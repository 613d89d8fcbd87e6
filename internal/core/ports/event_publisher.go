package ports

import "context"

// Event names broadcast to subscribed clients, one per mutation.
const (
	EventMenuCreated  = "menu_created"
	EventMenuUpdated  = "menu_updated"
	EventMenuDeleted  = "menu_deleted"
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
	EventOrderPaid    = "order_paid"
)

// EventPublisher broadcasts a typed event for every committed mutation to all
// subscribed observers.
//
// Delivery is fire-and-forget: implementations log failures and return the
// error for observability, but callers publish only after a successful commit
// and never let a publish failure affect the committed mutation.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
}
