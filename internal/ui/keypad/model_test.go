package keypad

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/pos"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLedger struct {
	txns []model.Transaction
}

func (l *memLedger) Append(tx model.Transaction) error {
	l.txns = append([]model.Transaction{tx}, l.txns...)
	return nil
}

var cfg = model.AppConfig{
	ShopName:     "Chai Point",
	UPIID:        "chai@upi",
	QuickAmounts: []float64{10, 20, 50, 100},
	Catalog:      []model.CatalogItem{{ID: "1", Name: "Tea", Price: 10}, {ID: "2", Name: "Coffee", Price: 20}},
}

func newModel(d *pos.Dictation) (Model, *pos.Terminal, *memLedger) {
	ledger := &memLedger{}
	term := pos.NewTerminal(ledger, func() time.Time { return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC) })
	return New(term, d, cfg, func() decimal.Decimal { return decimal.Zero }), term, ledger
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func send(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, k := range keys {
		next, cmd = next.(Model).Update(key(k))
	}
	return next.(Model), cmd
}

func TestModel_TypingAndCharge(t *testing.T) {
	m, term, ledger := newModel(nil)

	m, _ = send(m, "5", "0", "0", ".", "5", "5", "7")
	assert.Equal(t, "500.55", term.Buffer())

	m, _ = send(m, "backspace", "backspace", "backspace", "backspace")
	assert.Equal(t, "50", term.Buffer())

	m, _ = send(m, "enter")
	require.Len(t, ledger.txns, 1)
	assert.Equal(t, "50", ledger.txns[0].Amount)
	assert.Equal(t, pos.ModePaymentCode, term.Mode())
	assert.Contains(t, m.View(), "chai@upi")

	m, _ = send(m, "7")
	assert.Equal(t, "50", term.Buffer())

	_, _ = send(m, "n")
	assert.Equal(t, pos.ModeEntry, term.Mode())
	assert.Equal(t, "0", term.Buffer())
}

func TestModel_ChargeZeroShowsError(t *testing.T) {
	m, term, ledger := newModel(nil)

	m, _ = send(m, "enter")
	assert.Empty(t, ledger.txns)
	assert.Equal(t, pos.ModeEntry, term.Mode())
	assert.True(t, m.failed)
	assert.Contains(t, m.View(), "Amount must be greater than zero")
}

func TestModel_PresetsAndCatalog(t *testing.T) {
	m, term, ledger := newModel(nil)

	m, _ = send(m, "q", "r")
	assert.Equal(t, "110", term.Buffer())

	m, _ = send(m, "tab", "2", "1", "tab")
	assert.Equal(t, "140", term.Buffer())
	assert.Equal(t, []string{"Coffee", "Tea"}, term.Items())

	m, _ = send(m, "z")
	assert.Equal(t, "14000", term.Buffer())

	_, _ = send(m, "enter")
	require.Len(t, ledger.txns, 1)
	assert.Equal(t, "Coffee + Tea", ledger.txns[0].Items)
}

func TestModel_NavigationKeysQuit(t *testing.T) {
	tests := []struct {
		key  string
		exit Exit
	}{
		{"l", ExitLedger},
		{"s", ExitSettings},
		{"x", ExitLogout},
		{"esc", ExitQuit},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _, _ := newModel(nil)
			m, cmd := send(m, tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Equal(t, tt.exit, m.Exit())
		})
	}
}

type heldStream struct {
	amounts []float64
}

func (s *heldStream) Run(ctx context.Context, emit func(float64)) error {
	for _, a := range s.amounts {
		emit(a)
	}
	<-ctx.Done()
	return nil
}

func (s *heldStream) Close() error { return nil }

type oneShot struct{ stream *heldStream }

func (r oneShot) Open(context.Context) (pos.Stream, error) { return r.stream, nil }

func TestModel_VoiceUpdatesBuffer(t *testing.T) {
	d := pos.NewDictation(oneShot{stream: &heldStream{amounts: []float64{120}}}, zerolog.Nop())
	m, term, _ := newModel(d)

	m, cmd := send(m, "v")
	require.NotNil(t, cmd)
	assert.True(t, d.Active())

	next, cmd := m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, "120", term.Buffer())
	assert.NotNil(t, cmd, "keeps listening for more updates")

	m, _ = send(m, "v")
	assert.False(t, d.Active())

	msg := cmd()
	next, _ = m.Update(msg)
	assert.Equal(t, "120", next.(Model).term.Buffer())
}

func TestModel_VoiceUnavailable(t *testing.T) {
	m, _, _ := newModel(nil)

	m, cmd := send(m, "v")
	assert.Nil(t, cmd)
	assert.True(t, m.failed)
}
