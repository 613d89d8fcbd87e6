package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem or RestoreLineItem factory methods.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is a single position of an order: a menu item reference with a
// quantity. Line items are owned exclusively by their order and are immutable
// once the order is created.
//
// The dish name, unit price and image reference are snapshotted from the menu
// item at creation time, so a later menu edit never changes the subtotal of a
// persisted order. The menu item id is kept alongside the snapshot to block
// deletion of menu items that are still referenced.
type LineItem struct {
	id kernel.UUID

	menuItemID   kernel.UUID
	menuName     string
	menuPrice    float64
	menuImageURL string

	quantity int

	isConstructed bool
}

// NewLineItem creates a line item for the given menu item, snapshotting its
// name, price and image reference. The quantity must be at least 1 and the
// menu item must be a properly constructed aggregate.
func NewLineItem(id kernel.UUID, item *menu.MenuItem, quantity int) (LineItem, error) {
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}

	return RestoreLineItem(id, item.ID(), item.Name(), item.Price(), item.ImageURL(), quantity)
}

// RestoreLineItem reconstructs a line item from persisted values.
// The same invariants as NewLineItem are enforced on the restored fields.
func RestoreLineItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	menuName string,
	menuPrice float64,
	menuImageURL string,
	quantity int,
) (LineItem, error) {
	li := LineItem{
		menuName:      menuName,
		menuImageURL:  menuImageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		li.setID(id),
		li.setMenuItemID(menuItemID),
		li.setMenuPrice(menuPrice),
		li.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}

	return nil
}

// ID returns the line item's unique identifier.
func (li LineItem) ID() kernel.UUID {
	return li.id
}

// MenuItemID returns the identifier of the referenced menu item.
func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// MenuName returns the dish name snapshotted at order creation.
func (li LineItem) MenuName() string {
	return li.menuName
}

// MenuPrice returns the unit price snapshotted at order creation.
func (li LineItem) MenuPrice() float64 {
	return li.menuPrice
}

// MenuImageURL returns the image reference snapshotted at order creation.
func (li LineItem) MenuImageURL() string {
	return li.menuImageURL
}

// Quantity returns the ordered quantity, always at least 1.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns quantity × unit price for this position.
func (li LineItem) Subtotal() float64 {
	return float64(li.quantity) * li.menuPrice
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.menuItemID = id
	return nil
}

func (li *LineItem) setMenuPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is negative", price))
	}
	li.menuPrice = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
