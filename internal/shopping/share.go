package shopping

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	shareHeader  = "🛒 Sua Lista de Compras - NutrIA\n\n"
	whatsappBase = "https://wa.me/?text="
)

// ShareText renders the list as a bulleted message.
func ShareText(items []Item) string {
	var b strings.Builder
	b.WriteString(shareHeader)
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item.Name)
		b.WriteString(": ")
		b.WriteString(FormatQuantity(item.Quantity))
		b.WriteString(item.Unit)
	}
	return b.String()
}

// ShareURL returns a WhatsApp deep link carrying ShareText.
func ShareURL(items []Item) string {
	return whatsappBase + strings.ReplaceAll(url.QueryEscape(ShareText(items)), "+", "%20")
}

// FormatQuantity rounds to two decimals and drops trailing zeros.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(math.Round(q*100)/100, 'f', -1, 64)
}
