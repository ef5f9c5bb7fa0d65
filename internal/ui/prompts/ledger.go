package prompts

import (
	"fmt"
	"strings"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
)

const (
	LedgerFilter = "filter"
	LedgerExport = "export"
	LedgerImport = "import"
	LedgerDelete = "delete"
	LedgerBack   = "back"
)

var windowLabels = map[string]string{
	constants.WindowAll:   "All time",
	constants.WindowToday: "Today",
	constants.WindowWeek:  "Last 7 days",
	constants.WindowMonth: "Last 30 days",
}

func WindowLabel(window string) string {
	if label, ok := windowLabels[window]; ok {
		return label
	}
	return window
}

func PromptLedgerMenu() (string, error) {
	return PromptChoice("Ledger", []Choice{
		{Label: "Change filter", Value: LedgerFilter},
		{Label: "Export CSV", Value: LedgerExport},
		{Label: "Import CSV", Value: LedgerImport},
		{Label: "Delete a transaction", Value: LedgerDelete},
		{Label: "Back to POS", Value: LedgerBack},
	}, LedgerBack)
}

func PromptWindow(windows []string, current string) (string, error) {
	choices := make([]Choice, 0, len(windows))
	for _, w := range windows {
		choices = append(choices, Choice{Label: WindowLabel(w), Value: w})
	}
	return PromptChoice("Show transactions from", choices, current)
}

// PromptPickTransaction returns the id of the chosen transaction.
func PromptPickTransaction(txns []model.Transaction) (string, error) {
	if len(txns) == 0 {
		return "", nil
	}

	choices := make([]Choice, 0, len(txns))
	for _, tx := range txns {
		choices = append(choices, Choice{
			Label: fmt.Sprintf("₹%s  %s  %s", tx.Amount, tx.Timestamp, tx.Items),
			Value: tx.ID,
		})
	}
	return PromptChoice("Which transaction?", choices, txns[0].ID)
}

func PromptFilePath(message, defaultValue string) (string, error) {
	path, err := PromptInput(message, defaultValue, func(s string) error {
		if strings.TrimSpace(s) == "" {
			return apperror.ErrMissingFields()
		}
		return nil
	})
	return strings.TrimSpace(path), err
}
