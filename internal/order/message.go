package order

import (
	"fmt"
	"net/url"
	"strings"

	"superstar/internal/cart"
)

// Config identifies the deployment's WhatsApp recipient and the banner
// shown in the message header.
type Config struct {
	Recipient string // digits only, country code included
	Business  string
}

// Message is the composed order: raw text plus the wa.me deep link.
// Both are kept because some hosts refuse to open the link and the
// text must stay independently copyable.
type Message struct {
	Text     string
	DeepLink string
}

const divider = "━━━━━━━━━━━━━━━━━━━━━"

// ComposeText renders the order message. Same lines and details give
// byte-identical output: fixed section order, no timestamps.
func ComposeText(cfg Config, lines []cart.Line, total int64, d CustomerDetails) string {
	d = d.Trimmed()

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *New Order - %s*\n\n", cfg.Business)
	b.WriteString(divider + "\n")
	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", d.Name)
	fmt.Fprintf(&b, "📱 Mobile: %s\n", d.Mobile)
	fmt.Fprintf(&b, "📍 Address: %s\n\n", d.Address)
	b.WriteString(divider + "\n")
	b.WriteString("*Order Details:*\n\n")

	for i, l := range lines {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, l.Product.Name)
		fmt.Fprintf(&b, "   Qty: %d × ₹%d = ₹%d\n\n", l.Qty, l.Product.Price, l.Subtotal())
	}

	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "*Total Amount: ₹%d*\n\n", total)
	b.WriteString("Please confirm this order.\n")
	b.WriteString("Thank you for ordering! 🙏")
	return b.String()
}

// EncodeComponent percent-encodes s the way JS encodeURIComponent
// does for the characters we emit: QueryEscape, with spaces as %20
// rather than '+'. Decoding with url.QueryUnescape round-trips.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// DeepLink builds the wa.me URL carrying text for recipient.
func DeepLink(recipient, text string) string {
	return "https://wa.me/" + recipient + "?text=" + EncodeComponent(text)
}
