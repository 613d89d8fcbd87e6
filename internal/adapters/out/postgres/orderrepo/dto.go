// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
// An order row and its line item rows are always written and read together.
package orderrepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its display string so the table reads naturally.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SeatNumber  string    `gorm:"index"`
	Status      string    `gorm:"not null;index"`
	IsPaid      bool      `gorm:"not null"`
	TotalAmount float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`

	Items []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents the database structure for persisting order lines.
// Menu fields are the snapshot captured at ordering time. The menu item
// reference is RESTRICT on delete: a catalog item with order history cannot
// be removed out from under it. Position records where the line sits within
// its order, so reads return lines in creation order.
type LineItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuName     string    `gorm:"not null"`
	MenuPrice    float64   `gorm:"not null"`
	MenuImageURL string
	Quantity     int `gorm:"not null"`
	Position     int `gorm:"not null"`

	MenuItem menurepo.MenuItemDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for order line entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate to its database representation,
// line items included.
func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	lines := make([]LineItemDTO, 0, len(items))
	for i, li := range items {
		lines = append(lines, LineItemDTO{
			ID:           li.ID().Bytes(),
			OrderID:      o.ID().Bytes(),
			MenuItemID:   li.MenuItemID().Bytes(),
			MenuName:     li.MenuName(),
			MenuPrice:    li.MenuPrice(),
			MenuImageURL: li.MenuImageURL(),
			Quantity:     li.Quantity(),
			Position:     i,
		})
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		SeatNumber:  o.SeatNumber(),
		Status:      o.Status().String(),
		IsPaid:      o.IsPaid(),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
		Items:       lines,
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which recomputes
// the total from the restored line items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dto.Items))
	for _, lineDTO := range dto.Items {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLineItem(
			lineID,
			menuItemID,
			lineDTO.MenuName,
			lineDTO.MenuPrice,
			lineDTO.MenuImageURL,
			lineDTO.Quantity,
		)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.SeatNumber, status, dto.IsPaid, dto.CreatedAt, lines)
}
