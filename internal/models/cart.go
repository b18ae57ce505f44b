package models

// CartLine is one entry in a cart, unique per item id. Name and unit price
// are captured when the item is first added; later catalog changes never
// affect a cart that already holds the item.
type CartLine struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// LineTotal returns the price of the line (unit price times quantity)
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Totals holds the derived amounts of a cart
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	Discount  int64 `json:"discount"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"item_count"`
}

// CartView is the payload for GET /cart and all cart mutation responses
type CartView struct {
	SessionID        string     `json:"session_id"`
	Lines            []CartLine `json:"lines"`
	Totals           Totals     `json:"totals"`
	ContactPhone     string     `json:"contact_phone"`
	ContactLocation  string     `json:"contact_location"`
	PromotionApplied bool       `json:"promotion_applied"`
}

// AddItemRequest is the body of POST /cart/items
type AddItemRequest struct {
	ItemID string `json:"item_id"`
}

// UpdateQuantityRequest is the body of PATCH /cart/items/{id}
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

// ContactRequest is the body of PUT /cart/contact
type ContactRequest struct {
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// PromotionRequest is the body of POST /cart/promotion
type PromotionRequest struct {
	Applied bool `json:"applied"`
}
