package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdp/qrterminal/v3"
)

// QRCode renders data as a half-block QR code.
func QRCode(data string) string {
	var sb strings.Builder
	qrterminal.GenerateHalfBlock(data, qrterminal.M, &sb)
	return sb.String()
}

// RenderPaymentCode writes the QR, amount and URI for a completed charge.
func RenderPaymentCode(w io.Writer, shopName, upiID, amount, uri string) {
	fmt.Fprintln(w, QRCode(uri))
	fmt.Fprintf(w, "Pay ₹%s to %s\n", amount, shopName)
	fmt.Fprintf(w, "%s\n", upiID)
	fmt.Fprintf(w, "%s\n", uri)
}
