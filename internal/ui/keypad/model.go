package keypad

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/pos"
	"github.com/hance08/fixpay/internal/ui/views"
	"github.com/hance08/fixpay/internal/utils"
	"github.com/shopspring/decimal"
)

// Exit says why the POS screen closed.
type Exit int

const (
	ExitQuit Exit = iota
	ExitLedger
	ExitSettings
	ExitLogout
)

// presetKeys select quick amounts by position.
var presetKeys = []string{"q", "w", "e", "r", "t", "y", "u", "i", "o"}

type updateMsg struct {
	update pos.Update
	ok     bool
	ch     <-chan pos.Update
}

// Model is the POS screen. It owns the terminal; dictation updates arrive
// as messages and are applied here only.
type Model struct {
	term       *pos.Terminal
	dictation  *pos.Dictation
	cfg        model.AppConfig
	todayTotal func() decimal.Decimal

	catalog bool
	status  string
	failed  bool
	exit    Exit
}

func New(term *pos.Terminal, dictation *pos.Dictation, cfg model.AppConfig, todayTotal func() decimal.Decimal) Model {
	if dictation != nil {
		term.AttachDictation(dictation)
	}
	return Model{
		term:       term,
		dictation:  dictation,
		cfg:        cfg,
		todayTotal: todayTotal,
	}
}

func (m Model) Exit() Exit { return m.exit }

func (m Model) Init() tea.Cmd { return nil }

func waitForUpdate(ch <-chan pos.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		return updateMsg{update: u, ok: ok, ch: ch}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		return m.onUpdate(msg)
	case tea.KeyMsg:
		return m.onKey(msg.String())
	}
	return m, nil
}

func (m Model) onUpdate(msg updateMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		if m.dictation != nil && !m.dictation.Active() {
			m.setStatus("Voice input stopped", false)
		}
		return m, nil
	}
	if m.dictation != nil && m.dictation.Accept(msg.update) {
		m.term.ApplyDictated(msg.update.Amount)
	}
	return m, waitForUpdate(msg.ch)
}

func (m Model) onKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "esc":
		if m.catalog && key == "esc" {
			m.catalog = false
			return m, nil
		}
		return m.leave(ExitQuit)
	}

	if m.term.Mode() == pos.ModePaymentCode {
		switch key {
		case "n", "enter", "c":
			m.term.NewPayment()
			m.setStatus("", false)
		case "l":
			return m.leave(ExitLedger)
		}
		return m, nil
	}

	if m.catalog {
		if idx := digitIndex(key); idx >= 0 && idx < len(m.cfg.Catalog) {
			m.term.PickItem(m.cfg.Catalog[idx])
		}
		if key == "tab" {
			m.catalog = false
		}
		return m, nil
	}

	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		m.term.Press(key)
	case "z":
		m.term.Press("00")
	case "backspace":
		m.term.Backspace()
	case "c":
		m.term.Clear()
		m.setStatus("", false)
	case "tab":
		if len(m.cfg.Catalog) > 0 {
			m.catalog = true
		} else {
			m.setStatus("No catalog items yet. Add some in settings.", true)
		}
	case "enter":
		if _, err := m.term.Charge(m.cfg); err != nil {
			m.setStatus(apperror.Message(err), true)
		} else {
			m.setStatus("", false)
		}
	case "v":
		return m.toggleVoice()
	case "l":
		return m.leave(ExitLedger)
	case "s":
		return m.leave(ExitSettings)
	case "x":
		return m.leave(ExitLogout)
	default:
		for i, k := range presetKeys {
			if key == k && i < len(m.cfg.QuickAmounts) {
				m.term.AddPreset(m.cfg.QuickAmounts[i])
			}
		}
	}
	return m, nil
}

func (m Model) toggleVoice() (tea.Model, tea.Cmd) {
	if m.dictation == nil {
		m.setStatus("Voice input unavailable", true)
		return m, nil
	}
	if m.dictation.Active() {
		m.dictation.Stop()
		m.setStatus("Voice input stopped", false)
		return m, nil
	}

	_, updates, err := m.dictation.Start(context.Background())
	if err != nil {
		m.setStatus(apperror.Message(err), true)
		return m, nil
	}
	m.setStatus("Listening... say the bill amount", false)
	return m, waitForUpdate(updates)
}

func (m Model) leave(exit Exit) (tea.Model, tea.Cmd) {
	if m.dictation != nil {
		m.dictation.Stop()
	}
	m.exit = exit
	return m, tea.Quit
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

func digitIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.cfg.ShopName))
	if m.todayTotal != nil {
		b.WriteString(dimStyle.Render("  Today: " + utils.FormatRupees(m.todayTotal())))
	}
	b.WriteString("\n\n")

	if receipt := m.term.Receipt(); receipt != nil {
		b.WriteString(views.QRCode(receipt.URI))
		b.WriteString("\n")
		b.WriteString(okStyle.Render(fmt.Sprintf("₹%s", receipt.Transaction.Amount)))
		b.WriteString("  " + m.cfg.UPIID + "\n\n")
		b.WriteString(dimStyle.Render("n new payment • l ledger • esc quit"))
		return b.String()
	}

	b.WriteString(amountStyle.Render("₹" + m.term.Buffer()))
	b.WriteString("\n")
	if items := m.term.Items(); len(items) > 0 {
		b.WriteString(dimStyle.Render(strings.Join(items, " + ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.catalog {
		for i, item := range m.cfg.Catalog {
			if i >= 9 {
				break
			}
			fmt.Fprintf(&b, "%s %s ₹%s\n", keyStyle.Render(fmt.Sprint(i+1)), item.Name, utils.FormatPlain(item.Price))
		}
		b.WriteString(dimStyle.Render("tab/esc close catalog"))
		b.WriteString("\n")
	} else {
		var presets []string
		for i, v := range m.cfg.QuickAmounts {
			if i >= len(presetKeys) {
				break
			}
			presets = append(presets, fmt.Sprintf("%s +%s", keyStyle.Render(presetKeys[i]), utils.FormatPlain(v)))
		}
		b.WriteString(strings.Join(presets, "   "))
		b.WriteString("\n")
	}

	if m.dictation != nil && m.dictation.Active() {
		b.WriteString(listenStyle.Render("● listening"))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("0-9 . z(00) • ⌫ back • c clear • enter charge • tab items • v voice • l ledger • s settings • x logout • esc quit"))
	return b.String()
}
