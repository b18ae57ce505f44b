package models

// Category is one of the fixed menu sections, in display order
type Category string

const (
	Grelhados       Category = "Grelhados"
	Especiais       Category = "Especiais"
	Peixes          Category = "Peixes"
	Hamburgueres    Category = "Hambúrgueres"
	Acompanhamentos Category = "Acompanhamentos"
)

// AllCategories lists the menu sections in the order the storefront renders them
var AllCategories = []Category{Grelhados, Especiais, Peixes, Hamburgueres, Acompanhamentos}

// MenuItem is a single orderable dish. Prices are whole kwanzas.
type MenuItem struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description,omitempty" db:"description"`
	Price       int64    `json:"price" db:"price"`
	Category    Category `json:"category" db:"category"`
	Popular     bool     `json:"popular,omitempty" db:"popular"`
}

// MenuSection groups the items of one category for the menu response
type MenuSection struct {
	Category Category   `json:"category"`
	Items    []MenuItem `json:"items"`
}

// BusinessInfo is the static contact block shown alongside the menu
type BusinessInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Instagram    string `json:"instagram"`
	Location     string `json:"location"`
	OpeningHours string `json:"opening_hours"`
}

// MenuResponse is the payload for GET /menu
type MenuResponse struct {
	Business BusinessInfo  `json:"business"`
	Sections []MenuSection `json:"sections"`
}
