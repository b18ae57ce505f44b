// Package order turns a finalized cart into the WhatsApp order message.
// The message layout is a fixed contract with the people processing orders
// on the other end; labels, emoji markers and section order must not change.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"reis-dos-frangos/internal/models"
)

const separator = "───────────────"

const closingLine = "Obrigado pela preferência! 🍗"

// kzPrinter applies the pt digit grouping used everywhere amounts appear
var kzPrinter = message.NewPrinter(language.Portuguese)

// FormatKz renders a whole-kwanza amount with thousands separators (23.000)
func FormatKz(amount int64) string {
	return kzPrinter.Sprintf("%d", amount)
}

// BuildMessage renders the order text. Lines appear in cart order; the
// discount line is present only when the promotion is applied.
func BuildMessage(businessName, contactLocation, contactPhone string, lines []models.CartLine, totals models.Totals, promotionApplied bool, discountPercent int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔥 *NOVO PEDIDO - %s* 🔥\n\n", strings.ToUpper(businessName))

	b.WriteString("📍 *Localização:*\n")
	b.WriteString(contactLocation)
	b.WriteString("\n\n")

	b.WriteString("📞 *Telefone:*\n")
	b.WriteString(contactPhone)
	b.WriteString("\n\n")

	b.WriteString("🛒 *Detalhes do Pedido:*\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "• %dx %s (%s Kz)\n", line.Quantity, line.Name, FormatKz(line.LineTotal()))
	}
	b.WriteString("\n")

	b.WriteString(separator)
	b.WriteString("\n")
	fmt.Fprintf(&b, "*Subtotal:* %s Kz\n", FormatKz(totals.Subtotal))
	if promotionApplied {
		fmt.Fprintf(&b, "*Desconto (%d%%):* -%s Kz\n", discountPercent, FormatKz(totals.Discount))
	}
	fmt.Fprintf(&b, "*Total:* %s Kz\n", FormatKz(totals.Total))
	b.WriteString(separator)
	b.WriteString("\n\n")

	b.WriteString(closingLine)

	return b.String()
}

// WhatsAppURL builds the wa.me deep link carrying the order message.
// Spaces are encoded as %20, not +, so chat clients render them correctly.
func WhatsAppURL(baseURL, msg string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return baseURL + "?text=" + encoded
}
