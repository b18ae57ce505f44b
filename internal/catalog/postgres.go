package catalog

import (
	"context"
	"fmt"

	"reis-dos-frangos/internal/database"
	"reis-dos-frangos/internal/models"
)

// LoadFromDatabase reads the menu from the menu_items table. The table is
// seeded from the built-in menu data on first run, so a fresh database
// serves the same catalog as the static fallback.
func LoadFromDatabase(ctx context.Context, db *database.DB) (*Catalog, error) {
	if err := seedIfEmpty(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to seed menu items: %w", err)
	}

	rows, err := db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Popular); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menu items: %w", err)
	}

	return New(items)
}

// seedIfEmpty inserts the built-in menu when the table has no rows
func seedIfEmpty(ctx context.Context, db *database.DB) error {
	var count int
	if err := db.QueryRow(ctx, database.CountMenuItemsSQL).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for position, item := range menuItems {
		err := db.Exec(ctx, database.InsertMenuItemSQL,
			item.ID, item.Name, item.Description, item.Price, string(item.Category), item.Popular, position)
		if err != nil {
			return fmt.Errorf("failed to insert menu item %s: %w", item.ID, err)
		}
	}

	return nil
}
