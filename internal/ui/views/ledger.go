package views

import (
	"fmt"
	"time"

	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type LedgerSummary struct {
	WindowLabel string
	Total       decimal.Decimal
	Count       int
}

// FormatLedgerDate shows "Today, 14:05" for today's entries and
// "Mar 08, 14:05" otherwise, in local time.
func FormatLedgerDate(tx model.Transaction, now time.Time) string {
	ts, ok := tx.Time()
	if !ok {
		return tx.Timestamp
	}
	ts = ts.In(now.Location())

	y1, m1, d1 := ts.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today, " + ts.Format("15:04")
	}
	return ts.Format("Jan 02, 15:04")
}

func RenderLedger(txns []model.Transaction, summary LedgerSummary, now time.Time) error {
	pterm.DefaultSection.Printf("Ledger: %s", summary.WindowLabel)

	pterm.Info.Printf("Total %s from %d transactions\n", utils.FormatRupees(summary.Total), summary.Count)

	if len(txns) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Amount", "Description"},
	}

	for _, tx := range txns {
		desc := tx.Items
		if desc == "" {
			desc = pterm.Gray("Quick charge")
		}
		tableData = append(tableData, []string{
			tx.ID,
			FormatLedgerDate(tx, now),
			pterm.Green(fmt.Sprintf("₹%s", tx.Amount)),
			desc,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderDeletePreview(tx model.Transaction, now time.Time) {
	pterm.Warning.Printf("About to delete transaction %s:\n", tx.ID)

	info := pterm.TableData{
		{"Date", FormatLedgerDate(tx, now)},
		{"Amount", fmt.Sprintf("₹%s", tx.Amount)},
		{"Description", tx.Items},
	}

	_ = pterm.DefaultTable.WithData(info).Render()
	pterm.Warning.Println("This action cannot be undone!")
}

// RenderImportResult reports how an import went.
func RenderImportResult(added, parsed, dropped int) {
	pterm.Success.Printf("Successfully imported %d transactions\n", added)
	if skipped := parsed - added; skipped > 0 {
		pterm.Info.Printf("%d already in the ledger\n", skipped)
	}
	if dropped > 0 {
		pterm.Warning.Printf("%d rows skipped (fewer than 4 columns)\n", dropped)
	}
}
