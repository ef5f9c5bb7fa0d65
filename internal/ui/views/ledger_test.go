package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hance08/fixpay/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatLedgerDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, ist)

	tests := []struct {
		name     string
		ts       string
		expected string
	}{
		{"today", "2025-03-10T08:35:00.000Z", "Today, 14:05"},
		{"early today", "2025-03-09T18:45:00.000Z", "Today, 00:15"},
		{"yesterday", "2025-03-09T08:35:00.000Z", "Mar 09, 14:05"},
		{"unreadable", "soon", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLedgerDate(model.Transaction{Timestamp: tt.ts}, now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderPaymentCode(t *testing.T) {
	var buf bytes.Buffer
	uri := "upi://pay?pa=chai@upi&pn=Chai%20Point&am=25&cu=INR"

	RenderPaymentCode(&buf, "Chai Point", "chai@upi", "25", uri)

	out := buf.String()
	assert.True(t, strings.Contains(out, "Pay ₹25 to Chai Point"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), uri))
	assert.NotEmpty(t, QRCode(uri))
}
