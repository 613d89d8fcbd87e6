package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a partial update of a catalog item.
// Nil fields are left untouched; only the provided fields change.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       *string
	price      *float64
	imageURL   *string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to change a catalog item.
// A nil field means "keep the stored value". Provided fields are validated:
// the name must not be empty and the price must not be negative.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID, name *string, price *float64, imageURL *string,
) (UpdateMenuItemCommand, error) {
	menuCommand := UpdateMenuItemCommand{
		guard:    guard.NewConstructorGuard(),
		imageURL: imageURL,
	}

	if err := errors.Join(
		menuCommand.setMenuItemID(menuItemID),
		menuCommand.setName(name),
		menuCommand.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateMenuItemCommandIsNotConstructed if validation fails.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the catalog item to change.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the new display name, or nil when the name is unchanged.
func (c UpdateMenuItemCommand) Name() *string {
	return c.name
}

// Price returns the new unit price, or nil when the price is unchanged.
func (c UpdateMenuItemCommand) Price() *float64 {
	return c.price
}

// ImageURL returns the new image location, or nil when it is unchanged.
func (c UpdateMenuItemCommand) ImageURL() *string {
	return c.imageURL
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price *float64) error {
	if price != nil && *price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
