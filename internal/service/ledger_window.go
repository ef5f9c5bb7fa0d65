package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/utils"
	"github.com/shopspring/decimal"
)

// ParseWindow validates a window name (all, today, week, month).
func ParseWindow(s string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	for _, known := range constants.Windows {
		if w == known {
			return w, nil
		}
	}
	return "", apperror.Validation(fmt.Sprintf("unknown window '%s' (must be one of %s)", s, strings.Join(constants.Windows, ", ")))
}

// WindowStart returns the inclusive lower bound of window relative to now.
// Week and month count back 7 and 30 days from local midnight; month is a
// fixed 30 days, not a calendar month. ok is false for "all".
func WindowStart(window string, now time.Time) (time.Time, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch window {
	case constants.WindowToday:
		return midnight, true
	case constants.WindowWeek:
		return midnight.Add(-7 * 24 * time.Hour), true
	case constants.WindowMonth:
		return midnight.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

// FilterByWindow returns the transactions inside window. The source slice is
// not modified. Transactions with unreadable timestamps only appear in "all".
func FilterByWindow(txns []model.Transaction, window string, now time.Time) []model.Transaction {
	start, bounded := WindowStart(window, now)

	out := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		if !bounded {
			out = append(out, tx)
			continue
		}
		ts, ok := tx.Time()
		if ok && !ts.Before(start) {
			out = append(out, tx)
		}
	}
	return out
}

// TotalOf sums the amounts; unparsable amounts count as zero.
func TotalOf(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txns {
		total = total.Add(utils.ParseAmount(tx.Amount))
	}
	return total
}

// MergeTransactions keeps the incoming records whose id is new, combines them
// with existing and re-sorts the whole list newest first. It returns the
// merged list and the number of records added.
func MergeTransactions(existing, incoming []model.Transaction) ([]model.Transaction, int) {
	seen := make(map[string]bool, len(existing)+len(incoming))
	for _, tx := range existing {
		seen[tx.ID] = true
	}

	var novel []model.Transaction
	for _, tx := range incoming {
		if seen[tx.ID] {
			continue
		}
		seen[tx.ID] = true
		novel = append(novel, tx)
	}

	merged := make([]model.Transaction, 0, len(novel)+len(existing))
	merged = append(merged, novel...)
	merged = append(merged, existing...)
	SortNewestFirst(merged)

	return merged, len(novel)
}

// SortNewestFirst orders txns by timestamp, descending. Unreadable
// timestamps sort last.
func SortNewestFirst(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		ti, _ := txns[i].Time()
		tj, _ := txns[j].Time()
		return ti.After(tj)
	})
}
