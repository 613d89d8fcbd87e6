package menu

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through the NewMenuItem or RestoreMenuItem factory methods.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem represents a dish on the restaurant menu. It is the aggregate root
// of the catalog.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Price must not be negative
//   - Can only be created through NewMenuItem or RestoreMenuItem
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated mutation methods.
type MenuItem struct {
	id kernel.UUID

	name  string
	price float64

	// imageURL is an opaque reference to an externally stored image,
	// empty when the item has no image
	imageURL string

	isConstructed bool
}

// NewMenuItem creates a new MenuItem with validation. This is the only way to
// create a valid menu item for a fresh catalog entry.
//
// Returns a validation error if the id is invalid, the name is empty, or the
// price is negative. The image reference is optional and stored as-is.
func NewMenuItem(id kernel.UUID, name string, price float64, imageURL string) (*MenuItem, error) {
	item := &MenuItem{
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence.
// The same invariants as NewMenuItem are enforced so corrupt rows never
// surface as valid aggregates.
func RestoreMenuItem(id kernel.UUID, name string, price float64, imageURL string) (*MenuItem, error) {
	return NewMenuItem(id, name, price, imageURL)
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the price of a single unit.
func (m *MenuItem) Price() float64 {
	return m.price
}

// ImageURL returns the opaque image reference, empty when none is set.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// Rename changes the dish name. The new name must not be empty.
func (m *MenuItem) Rename(name string) error {
	return m.setName(name)
}

// ChangePrice changes the unit price. The new price must not be negative.
func (m *MenuItem) ChangePrice(price float64) error {
	return m.setPrice(price)
}

// ChangeImageURL replaces the image reference. The reference is opaque, so
// any string, including the empty one, is accepted.
func (m *MenuItem) ChangeImageURL(imageURL string) {
	m.imageURL = imageURL
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is negative", price))
	}
	m.price = price
	return nil
}
