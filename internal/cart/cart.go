// Package cart implements the order-in-progress: an insertion-ordered set of
// quantity-aggregated lines plus the contact fields and the promotion flag
// needed to place the order.
package cart

import (
	"reis-dos-frangos/internal/models"
)

// Engine owns one cart. It is not safe for concurrent use; callers serialize
// access per session.
type Engine struct {
	lines []models.CartLine
	index map[string]int // item id -> position in lines

	contactPhone     string
	contactLocation  string
	promotionApplied bool

	discountPercent int
}

// New creates an empty cart with the given promotional discount rate
func New(discountPercent int) *Engine {
	return &Engine{
		index:           make(map[string]int),
		discountPercent: discountPercent,
	}
}

// AddItem puts one unit of the item into the cart. A second add of the same
// item merges into the existing line instead of creating a duplicate. The
// line keeps the name and price the item had when it was first added.
func (e *Engine) AddItem(item models.MenuItem) {
	if pos, ok := e.index[item.ID]; ok {
		e.lines[pos].Quantity++
		return
	}

	e.index[item.ID] = len(e.lines)
	e.lines = append(e.lines, models.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
}

// RemoveItem deletes the line for the item. Removing an absent item is a
// no-op, so double-clicks and stale references stay harmless.
func (e *Engine) RemoveItem(itemID string) {
	pos, ok := e.index[itemID]
	if !ok {
		return
	}

	e.lines = append(e.lines[:pos], e.lines[pos+1:]...)
	delete(e.index, itemID)
	for i := pos; i < len(e.lines); i++ {
		e.index[e.lines[i].ItemID] = i
	}
}

// UpdateQuantity adjusts an existing line by delta, clamped at 1. A decrement
// never deletes the line; dropping an item is only possible via RemoveItem.
// Unknown items are a no-op.
func (e *Engine) UpdateQuantity(itemID string, delta int) {
	pos, ok := e.index[itemID]
	if !ok {
		return
	}

	quantity := e.lines[pos].Quantity + delta
	if quantity < 1 {
		quantity = 1
	}
	e.lines[pos].Quantity = quantity
}

// SetContactPhone stores the delivery phone as given; no format checks
func (e *Engine) SetContactPhone(value string) {
	e.contactPhone = value
}

// SetContactLocation stores the delivery location as given
func (e *Engine) SetContactLocation(value string) {
	e.contactLocation = value
}

// SetPromotionApplied sets the self-reported promotion flag
func (e *Engine) SetPromotionApplied(applied bool) {
	e.promotionApplied = applied
}

func (e *Engine) ContactPhone() string {
	return e.contactPhone
}

func (e *Engine) ContactLocation() string {
	return e.contactLocation
}

func (e *Engine) PromotionApplied() bool {
	return e.promotionApplied
}

// IsEmpty reports whether the cart has no lines
func (e *Engine) IsEmpty() bool {
	return len(e.lines) == 0
}

// Lines returns a copy of the cart lines in the order items were first added
func (e *Engine) Lines() []models.CartLine {
	return append([]models.CartLine(nil), e.lines...)
}

// Totals derives the amounts from the current lines. The discount is integer
// arithmetic on whole kwanzas; every catalog price is a multiple of 50, so a
// 10% discount never truncates in practice.
func (e *Engine) Totals() models.Totals {
	var totals models.Totals
	for _, line := range e.lines {
		totals.Subtotal += line.LineTotal()
		totals.ItemCount += line.Quantity
	}

	if e.promotionApplied {
		totals.Discount = totals.Subtotal * int64(e.discountPercent) / 100
	}
	totals.Total = totals.Subtotal - totals.Discount

	return totals
}

// Clear resets the cart to its initial empty state
func (e *Engine) Clear() {
	e.lines = nil
	e.index = make(map[string]int)
	e.contactPhone = ""
	e.contactLocation = ""
	e.promotionApplied = false
}
