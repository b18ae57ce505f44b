package order

import (
	"net/url"
	"strings"
	"testing"

	"reis-dos-frangos/internal/models"
)

func TestFormatKz(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{350, "350"},
		{2300, "2.300"},
		{23000, "23.000"},
		{20700, "20.700"},
		{1150000, "1.150.000"},
	}

	for _, tt := range tests {
		if got := FormatKz(tt.amount); got != tt.want {
			t.Errorf("FormatKz(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestBuildMessage(t *testing.T) {
	lines := []models.CartLine{
		{ItemID: "5", Name: "Frango Inteiro no Churrasco", UnitPrice: 11500, Quantity: 2},
	}
	totals := models.Totals{Subtotal: 23000, Discount: 2300, Total: 20700, ItemCount: 2}

	got := BuildMessage("Reis dos Frangos", "Maianga", "932815377", lines, totals, true, 10)

	want := "🔥 *NOVO PEDIDO - REIS DOS FRANGOS* 🔥\n" +
		"\n" +
		"📍 *Localização:*\n" +
		"Maianga\n" +
		"\n" +
		"📞 *Telefone:*\n" +
		"932815377\n" +
		"\n" +
		"🛒 *Detalhes do Pedido:*\n" +
		"• 2x Frango Inteiro no Churrasco (23.000 Kz)\n" +
		"\n" +
		"───────────────\n" +
		"*Subtotal:* 23.000 Kz\n" +
		"*Desconto (10%):* -2.300 Kz\n" +
		"*Total:* 20.700 Kz\n" +
		"───────────────\n" +
		"\n" +
		"Obrigado pela preferência! 🍗"

	if got != want {
		t.Errorf("BuildMessage() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildMessage_WithoutPromotion(t *testing.T) {
	lines := []models.CartLine{
		{ItemID: "2", Name: "Asinha BBQ", UnitPrice: 5000, Quantity: 1},
	}
	totals := models.Totals{Subtotal: 5000, Discount: 0, Total: 5000, ItemCount: 1}

	got := BuildMessage("Reis dos Frangos", "Maianga", "932815377", lines, totals, false, 10)

	if strings.Contains(got, "Desconto") {
		t.Errorf("expected no discount line without promotion:\n%s", got)
	}
	if !strings.Contains(got, "*Subtotal:* 5.000 Kz\n*Total:* 5.000 Kz") {
		t.Errorf("expected subtotal immediately followed by total:\n%s", got)
	}
}

func TestBuildMessage_LinesInCartOrder(t *testing.T) {
	lines := []models.CartLine{
		{ItemID: "16", Name: "Arroz Branco", UnitPrice: 350, Quantity: 3},
		{ItemID: "5", Name: "Frango Inteiro no Churrasco", UnitPrice: 11500, Quantity: 1},
	}
	totals := models.Totals{Subtotal: 12550, Total: 12550, ItemCount: 4}

	got := BuildMessage("Reis dos Frangos", "Maianga", "932815377", lines, totals, false, 10)

	arroz := strings.Index(got, "• 3x Arroz Branco (1.050 Kz)")
	frango := strings.Index(got, "• 1x Frango Inteiro no Churrasco (11.500 Kz)")
	if arroz == -1 || frango == -1 {
		t.Fatalf("expected both item lines in message:\n%s", got)
	}
	if arroz > frango {
		t.Errorf("expected item lines in cart order:\n%s", got)
	}
}

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("https://wa.me/244932815377", "Pedido: 2x Frango (23.000 Kz)")

	if !strings.HasPrefix(got, "https://wa.me/244932815377?text=") {
		t.Fatalf("unexpected URL prefix: %s", got)
	}
	if strings.Contains(got, "+") {
		t.Errorf("expected spaces encoded as %%20, got %s", got)
	}

	// the link must decode back to the exact message
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("failed to parse URL: %v", err)
	}
	if decoded := parsed.Query().Get("text"); decoded != "Pedido: 2x Frango (23.000 Kz)" {
		t.Errorf("decoded text = %q", decoded)
	}
}

func TestWhatsAppURL_RoundTripsFullMessage(t *testing.T) {
	lines := []models.CartLine{
		{ItemID: "5", Name: "Frango Inteiro no Churrasco", UnitPrice: 11500, Quantity: 2},
	}
	totals := models.Totals{Subtotal: 23000, Discount: 2300, Total: 20700, ItemCount: 2}
	msg := BuildMessage("Reis dos Frangos", "Maianga", "932815377", lines, totals, true, 10)

	parsed, err := url.Parse(WhatsAppURL("https://wa.me/244932815377", msg))
	if err != nil {
		t.Fatalf("failed to parse URL: %v", err)
	}
	if decoded := parsed.Query().Get("text"); decoded != msg {
		t.Errorf("message did not survive URL round trip:\n%s", decoded)
	}
}
