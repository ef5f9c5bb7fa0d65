package pos

import (
	"strconv"
	"strings"
	"time"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/utils"
	"github.com/shopspring/decimal"
)

type Mode int

const (
	ModeEntry Mode = iota
	ModePaymentCode
)

func (m Mode) String() string {
	if m == ModePaymentCode {
		return "payment_code"
	}
	return "entry"
}

// Ledger is where committed charges go.
type Ledger interface {
	Append(tx model.Transaction) error
}

// Receipt is the result of a successful charge.
type Receipt struct {
	Transaction model.Transaction
	URI         string
}

// Terminal is the amount-entry state of the POS screen. It is owned by a
// single goroutine; dictation updates reach it through Dictation's channel.
type Terminal struct {
	ledger    Ledger
	now       func() time.Time
	dictation *Dictation
	currency  string

	buffer  string
	mode    Mode
	items   []string
	receipt *Receipt
}

func NewTerminal(ledger Ledger, now func() time.Time) *Terminal {
	if now == nil {
		now = time.Now
	}
	return &Terminal{
		ledger:   ledger,
		now:      now,
		currency: constants.DefaultCurrency,
		buffer:   "0",
		mode:     ModeEntry,
	}
}

// AttachDictation lets Charge tear down a running dictation session.
func (t *Terminal) AttachDictation(d *Dictation) {
	t.dictation = d
}

func (t *Terminal) SetCurrency(code string) {
	if code != "" {
		t.currency = code
	}
}

func (t *Terminal) Buffer() string { return t.buffer }

func (t *Terminal) Mode() Mode { return t.mode }

func (t *Terminal) Amount() decimal.Decimal {
	return utils.ParseAmount(t.buffer)
}

// Items returns the catalog picks made since the last clear.
func (t *Terminal) Items() []string {
	return append([]string(nil), t.items...)
}

// Receipt returns the last charge while the payment code is showing.
func (t *Terminal) Receipt() *Receipt {
	if t.mode != ModePaymentCode {
		return nil
	}
	return t.receipt
}

// Press feeds one keypad key: a digit, "." or "00". It reports whether the
// buffer changed.
func (t *Terminal) Press(key string) bool {
	if t.mode == ModePaymentCode {
		return false
	}

	if key == "00" {
		first := t.pressChar('0')
		second := t.pressChar('0')
		return first || second
	}
	if len(key) != 1 {
		return false
	}
	return t.pressChar(key[0])
}

func (t *Terminal) pressChar(c byte) bool {
	isDigit := c >= '0' && c <= '9'
	if !isDigit && c != '.' {
		return false
	}

	if t.buffer == "0" && isDigit {
		t.buffer = string(c)
		return c != '0'
	}
	if c == '.' && strings.Contains(t.buffer, ".") {
		return false
	}
	if _, frac, found := strings.Cut(t.buffer, "."); found && len(frac) >= constants.MaxFraction {
		return false
	}
	if len(t.buffer) >= constants.MaxAmountLen {
		return false
	}

	t.buffer += string(c)
	return true
}

// Clear resets the buffer and always returns to entry mode.
func (t *Terminal) Clear() {
	t.buffer = "0"
	t.items = nil
	t.mode = ModeEntry
	t.receipt = nil
}

func (t *Terminal) Backspace() {
	if t.mode == ModePaymentCode {
		return
	}
	if len(t.buffer) <= 1 {
		t.buffer = "0"
		return
	}
	t.buffer = t.buffer[:len(t.buffer)-1]
}

// AddPreset adds value to the buffer. The sum is re-rendered, so "12.50"
// plus 10 becomes "22.5".
func (t *Terminal) AddPreset(value float64) {
	if t.mode == ModePaymentCode {
		return
	}
	t.buffer = t.Amount().Add(decimal.NewFromFloat(value)).String()
}

// PickItem adds a catalog item's price and remembers its name for the
// transaction description.
func (t *Terminal) PickItem(item model.CatalogItem) {
	if t.mode == ModePaymentCode {
		return
	}
	t.AddPreset(item.Price)
	t.items = append(t.items, item.Name)
}

// ApplyDictated replaces the buffer with a recognized amount. Non-positive
// values are ignored.
func (t *Terminal) ApplyDictated(amount float64) bool {
	if t.mode == ModePaymentCode || amount <= 0 {
		return false
	}
	t.buffer = decimal.NewFromFloat(amount).String()
	return true
}

// Charge records a transaction for the buffered amount and switches to the
// payment code. A zero amount is rejected with nothing recorded.
func (t *Terminal) Charge(cfg model.AppConfig) (Receipt, error) {
	if t.mode == ModePaymentCode {
		return Receipt{}, apperror.Validation("a payment is already showing; start a new payment first")
	}
	if !t.Amount().IsPositive() {
		return Receipt{}, apperror.ErrInvalidAmount()
	}

	now := t.now()
	tx := model.Transaction{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Amount:    t.buffer,
		Timestamp: now.UTC().Format(constants.TimestampLayout),
		ShopName:  cfg.ShopName,
		UPIID:     cfg.UPIID,
		Items:     strings.Join(t.items, constants.ItemNameSeparator),
	}

	if err := t.ledger.Append(tx); err != nil {
		return Receipt{}, err
	}

	if t.dictation != nil {
		t.dictation.Stop()
	}

	receipt := Receipt{
		Transaction: tx,
		URI:         PaymentURI(cfg.UPIID, cfg.ShopName, tx.Amount, t.currency),
	}
	t.mode = ModePaymentCode
	t.receipt = &receipt
	return receipt, nil
}

// NewPayment leaves the payment code and starts a fresh entry.
func (t *Terminal) NewPayment() {
	t.Clear()
}
