package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the catalog from the database.
// The same handler backs the admin, waiter and customer menu views.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve every catalog item.
// Results are sorted by name for stable output.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			image_url
		FROM menu_items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)

	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			price    float64
			imageURL string
		)

		if err = rows.Scan(&id, &name, &price, &imageURL); err != nil {
			return nil, err
		}

		items = append(items, MenuItemResponse{
			ID:       id.String(),
			Name:     name,
			Price:    price,
			ImageURL: imageURL,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
