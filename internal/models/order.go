package models

import "time"

// PlacedOrder is the record published when a checkout succeeds
type PlacedOrder struct {
	OrderNumber string     `json:"order_number"`
	SessionID   string     `json:"session_id"`
	Lines       []CartLine `json:"lines"`
	Totals      Totals     `json:"totals"`
	Message     string     `json:"message"`
	PlacedAt    time.Time  `json:"placed_at"`
}

// CheckoutResponse is the payload for a successful POST /checkout
type CheckoutResponse struct {
	OrderNumber string `json:"order_number"`
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
	Totals      Totals `json:"totals"`
}
