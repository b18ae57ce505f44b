package cart

import (
	"testing"

	"reis-dos-frangos/internal/models"
)

var (
	frangoInteiro = models.MenuItem{ID: "5", Name: "Frango Inteiro no Churrasco", Price: 11500, Category: models.Grelhados}
	asinhaBBQ     = models.MenuItem{ID: "2", Name: "Asinha BBQ", Price: 5000, Category: models.Grelhados}
	arrozBranco   = models.MenuItem{ID: "16", Name: "Arroz Branco", Price: 350, Category: models.Acompanhamentos}
)

func TestAddItem_MergesSameItem(t *testing.T) {
	e := New(10)
	e.AddItem(frangoInteiro)
	e.AddItem(frangoInteiro)

	lines := e.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after adding the same item twice, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
	if got := e.Totals().Subtotal; got != 23000 {
		t.Errorf("expected subtotal 23000, got %d", got)
	}
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	e := New(10)
	e.AddItem(arrozBranco)
	e.AddItem(frangoInteiro)
	e.AddItem(arrozBranco)

	lines := e.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ItemID != "16" || lines[1].ItemID != "5" {
		t.Errorf("expected order [16 5], got [%s %s]", lines[0].ItemID, lines[1].ItemID)
	}
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int
		want   int
	}{
		{name: "increment", deltas: []int{1, 1}, want: 3},
		{name: "decrement floors at one", deltas: []int{-5}, want: 1},
		{name: "decrement then increment", deltas: []int{-1, 2}, want: 3},
		{name: "zero delta", deltas: []int{0}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(10)
			e.AddItem(frangoInteiro)
			for _, delta := range tt.deltas {
				e.UpdateQuantity(frangoInteiro.ID, delta)
			}

			lines := e.Lines()
			if len(lines) != 1 {
				t.Fatalf("expected line to survive quantity updates, got %d lines", len(lines))
			}
			if lines[0].Quantity != tt.want {
				t.Errorf("expected quantity %d, got %d", tt.want, lines[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantity_UnknownItemIsNoOp(t *testing.T) {
	e := New(10)
	e.AddItem(frangoInteiro)
	e.UpdateQuantity("999", 5)

	if got := e.Totals().ItemCount; got != 1 {
		t.Errorf("expected item count 1, got %d", got)
	}
}

func TestRemoveItem(t *testing.T) {
	e := New(10)
	e.AddItem(frangoInteiro)
	e.AddItem(asinhaBBQ)
	e.AddItem(arrozBranco)

	e.RemoveItem(asinhaBBQ.ID)

	lines := e.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after removal, got %d", len(lines))
	}
	if lines[0].ItemID != "5" || lines[1].ItemID != "16" {
		t.Errorf("expected order [5 16] after removal, got [%s %s]", lines[0].ItemID, lines[1].ItemID)
	}

	// repeated removal and updates on the removed id stay no-ops
	e.RemoveItem(asinhaBBQ.ID)
	e.UpdateQuantity(asinhaBBQ.ID, 3)
	if len(e.Lines()) != 2 {
		t.Errorf("expected removed item to stay gone")
	}

	// re-adding after removal starts a fresh line at the end
	e.AddItem(asinhaBBQ)
	lines = e.Lines()
	if lines[2].ItemID != "2" || lines[2].Quantity != 1 {
		t.Errorf("expected fresh line for re-added item, got %+v", lines[2])
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name      string
		promotion bool
		want      models.Totals
	}{
		{
			name:      "without promotion",
			promotion: false,
			want:      models.Totals{Subtotal: 23000, Discount: 0, Total: 23000, ItemCount: 2},
		},
		{
			name:      "with promotion",
			promotion: true,
			want:      models.Totals{Subtotal: 23000, Discount: 2300, Total: 20700, ItemCount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(10)
			e.AddItem(frangoInteiro)
			e.AddItem(frangoInteiro)
			e.SetPromotionApplied(tt.promotion)

			if got := e.Totals(); got != tt.want {
				t.Errorf("Totals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTotals_InvariantUnderAddOrder(t *testing.T) {
	a := New(10)
	a.AddItem(frangoInteiro)
	a.AddItem(asinhaBBQ)
	a.AddItem(frangoInteiro)

	b := New(10)
	b.AddItem(asinhaBBQ)
	b.AddItem(frangoInteiro)
	b.AddItem(frangoInteiro)

	if a.Totals() != b.Totals() {
		t.Errorf("totals differ for the same multiset of items: %+v vs %+v", a.Totals(), b.Totals())
	}
}

func TestTotals_EmptyCart(t *testing.T) {
	e := New(10)
	e.SetPromotionApplied(true)

	if got := e.Totals(); got != (models.Totals{}) {
		t.Errorf("expected zero totals for empty cart, got %+v", got)
	}
}

func TestAddItem_SnapshotsPrice(t *testing.T) {
	item := models.MenuItem{ID: "5", Name: "Frango Inteiro no Churrasco", Price: 11500}

	e := New(10)
	e.AddItem(item)

	// A later catalog price change must not reach the cart
	item.Price = 99999
	e.AddItem(item)

	if got := e.Totals().Subtotal; got != 23000 {
		t.Errorf("expected subtotal from add-time price, got %d", got)
	}
	if got := e.Lines()[0].UnitPrice; got != 11500 {
		t.Errorf("expected unit price snapshot 11500, got %d", got)
	}
}

func TestClear(t *testing.T) {
	e := New(10)
	e.AddItem(frangoInteiro)
	e.SetContactPhone("932815377")
	e.SetContactLocation("Maianga")
	e.SetPromotionApplied(true)

	e.Clear()

	if !e.IsEmpty() {
		t.Errorf("expected empty cart after Clear")
	}
	if e.ContactPhone() != "" || e.ContactLocation() != "" || e.PromotionApplied() {
		t.Errorf("expected contact fields and promotion to reset")
	}

	// cart stays usable after Clear
	e.AddItem(asinhaBBQ)
	if got := e.Totals().Subtotal; got != 5000 {
		t.Errorf("expected subtotal 5000 after re-adding, got %d", got)
	}
}
