package catalog

import (
	"fmt"

	"reis-dos-frangos/internal/models"
)

// Catalog is the read-only menu. It is built once at startup and never
// mutated afterwards.
type Catalog struct {
	items []models.MenuItem
	byID  map[string]models.MenuItem
}

// New builds a catalog from an ordered item list. Item ids must be unique.
func New(items []models.MenuItem) (*Catalog, error) {
	byID := make(map[string]models.MenuItem, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("menu item %q has no id", item.Name)
		}
		if item.Name == "" {
			return nil, fmt.Errorf("menu item %s has no name", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu item %s has negative price %d", item.ID, item.Price)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate menu item id: %s", item.ID)
		}
		byID[item.ID] = item
	}

	return &Catalog{
		items: append([]models.MenuItem(nil), items...),
		byID:  byID,
	}, nil
}

// NewStatic builds the catalog from the built-in menu data
func NewStatic() *Catalog {
	c, err := New(menuItems)
	if err != nil {
		// The static data is compile-time constant; a failure here is a bug.
		panic(err)
	}
	return c
}

// Categories returns the menu sections in display order
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), models.AllCategories...)
}

// ListByCategory returns the items of one category in declaration order.
// An unknown category yields an empty list.
func (c *Catalog) ListByCategory(category models.Category) []models.MenuItem {
	var items []models.MenuItem
	for _, item := range c.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// ItemByID looks up a single item
func (c *Catalog) ItemByID(id string) (models.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns every item in declaration order
func (c *Catalog) Items() []models.MenuItem {
	return append([]models.MenuItem(nil), c.items...)
}

// DisplayDescription returns the item's description, falling back to the
// category's stock phrase when the menu data carries none.
func DisplayDescription(item models.MenuItem) string {
	if item.Description != "" {
		return item.Description
	}
	if fallback, ok := fallbackDescriptions[item.Category]; ok {
		return fallback
	}
	return genericDescription
}
