// Package menurepo provides data transfer objects and mapping functions for
// catalog persistence. Implements the repository pattern for the menu item
// aggregate, converting between domain entities and database rows.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null"`
	Price    float64   `gorm:"not null"`
	ImageURL string
}

// TableName specifies the database table name for menu items.
// Overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item aggregate to its database representation.
func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:       item.ID().Bytes(),
		Name:     item.Name(),
		Price:    item.Price(),
		ImageURL: item.ImageURL(),
	}
}

// toDomain converts a database DTO to a menu item aggregate.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Price, dto.ImageURL)
}
