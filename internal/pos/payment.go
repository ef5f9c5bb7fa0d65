package pos

import (
	"fmt"
	"net/url"
	"strings"
)

// PaymentURI builds the UPI deep link a wallet app reads from the QR code.
// Only the payee name is percent-encoded; spaces become %20, not "+".
func PaymentURI(address, name, amount, currency string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s",
		address,
		strings.ReplaceAll(url.QueryEscape(name), "+", "%20"),
		amount,
		currency,
	)
}
