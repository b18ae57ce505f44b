package database

// Menu queries
const (
	ListMenuItemsSQL = `
		SELECT id, name, COALESCE(description, ''), price, category, popular
		FROM menu_items
		ORDER BY position ASC`

	CountMenuItemsSQL = `
		SELECT COUNT(*) FROM menu_items`

	InsertMenuItemSQL = `
		INSERT INTO menu_items (id, name, description, price, category, popular, position)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`
)
