// Package checkout renders a cart or buy-now selection into the plain-text
// order message sent to the shop over WhatsApp, and wraps it into a wa.me
// deep-link. It is pure formatting; persistence happens in the service layer.
package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
)

// BuildMessage renders the human-readable order summary. The savings line is
// included only when the pre-discount total exceeds the subtotal.
func BuildMessage(user *model.User, items []model.OrderItem, subtotal, mrpTotal float64, address *model.Address) string {
	lines := make([]string, 0, len(items)+6)
	lines = append(lines, "Hi! I'd like to order:")

	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%d) %s x%d = ₹%s", i+1, it.Name, it.Qty, amount(float64(it.Qty)*it.Price)))
	}

	lines = append(lines, fmt.Sprintf("Subtotal: ₹%s", amount(subtotal)))
	if mrpTotal > subtotal {
		lines = append(lines, fmt.Sprintf("(MRP: ₹%s, You save: ₹%s)", amount(mrpTotal), amount(mrpTotal-subtotal)))
	}

	lines = append(lines, fmt.Sprintf("Name: %s", user.Name))
	lines = append(lines, fmt.Sprintf("Phone: %s", user.Phone))
	if address != nil {
		lines = append(lines, fmt.Sprintf("Address: %s", formatAddress(*address)))
	}

	return strings.Join(lines, "\n")
}

// Link builds the wa.me deep-link with the message percent-encoded as the
// text query parameter.
func Link(shopNumber, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", shopNumber, url.QueryEscape(message))
}

// formatAddress joins the non-empty address parts with commas.
func formatAddress(a model.Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Label, a.Line1, a.City, a.State, a.Pincode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// amount renders a rupee amount without trailing zeros (800, not 800.00).
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
