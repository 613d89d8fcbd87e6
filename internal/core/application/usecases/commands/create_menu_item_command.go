package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
	ErrPriceIsInvalid = errors.New("price must not be negative")
)

// CreateMenuItemCommand represents a request to add a new item to the catalog.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewCreateMenuItemCommand(itemID, "Margherita", 9.50, "/img/margherita.png")
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
//
//	handler := NewCreateMenuItemCommandHandler(uowFactory, publisher)
//	resp, err := handler.Handle(ctx, cmd)
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	price      float64
	imageURL   string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a catalog item.
// Validates that the ID is valid, the name is not empty, and the price
// is not negative. Returns an error if any validation fails.
func NewCreateMenuItemCommand(
	menuItemID kernel.UUID, name string, price float64, imageURL string,
) (CreateMenuItemCommand, error) {
	menuCommand := CreateMenuItemCommand{
		guard:    guard.NewConstructorGuard(),
		imageURL: imageURL,
	}

	if err := errors.Join(
		menuCommand.setMenuItemID(menuItemID),
		menuCommand.setName(name),
		menuCommand.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMenuItemCommandIsNotConstructed if validation fails.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the unique identifier for the new catalog item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the display name for the new catalog item.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the unit price for the new catalog item.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// ImageURL returns the optional image location for the new catalog item.
func (c CreateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
