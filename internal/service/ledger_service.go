package service

import (
	"fmt"
	"io"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerService keeps the transaction list in memory and writes the whole
// list through to the store on every mutation. The in-memory copy only
// changes after the write succeeds.
type LedgerService struct {
	records *store.Records
	log     zerolog.Logger
	now     Clock

	txns []model.Transaction
}

type ImportResult struct {
	Parsed  int
	Added   int
	Dropped int
}

func NewLedgerService(records *store.Records, log zerolog.Logger, now Clock) *LedgerService {
	return &LedgerService{
		records: records,
		log:     log,
		now:     now,
		txns:    []model.Transaction{},
	}
}

// Reload replaces the in-memory list with the stored one.
func (ls *LedgerService) Reload() error {
	txns, err := ls.records.LoadTransactions()
	if err != nil {
		return err
	}
	ls.txns = txns
	return nil
}

func (ls *LedgerService) forget() {
	ls.txns = []model.Transaction{}
}

// All returns a copy of the ledger, most recent first.
func (ls *LedgerService) All() []model.Transaction {
	return append([]model.Transaction(nil), ls.txns...)
}

func (ls *LedgerService) Find(id string) (model.Transaction, bool) {
	for _, tx := range ls.txns {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// Append puts tx at the front of the ledger. The caller provides a fresh id.
func (ls *LedgerService) Append(tx model.Transaction) error {
	next := make([]model.Transaction, 0, len(ls.txns)+1)
	next = append(next, tx)
	next = append(next, ls.txns...)

	if err := ls.commit(next); err != nil {
		return err
	}
	ls.log.Info().Str("id", tx.ID).Str("amount", tx.Amount).Msg("transaction recorded")
	return nil
}

// Delete removes the first transaction with id. An unknown id leaves the
// ledger unchanged.
func (ls *LedgerService) Delete(id string) error {
	idx := -1
	for i, tx := range ls.txns {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]model.Transaction, 0, len(ls.txns)-1)
	next = append(next, ls.txns[:idx]...)
	next = append(next, ls.txns[idx+1:]...)

	if err := ls.commit(next); err != nil {
		return err
	}
	ls.log.Info().Str("id", id).Msg("transaction deleted")
	return nil
}

// RequestDelete stages a delete that runs on Confirm.
func (ls *LedgerService) RequestDelete(id string) *PendingAction {
	return newPendingAction("Are you sure you want to delete this transaction?", func() error {
		return ls.Delete(id)
	})
}

// ImportMerge adds the incoming records whose ids are not yet present and
// re-sorts the whole ledger by timestamp. It returns how many were added.
func (ls *LedgerService) ImportMerge(incoming []model.Transaction) (int, error) {
	merged, added := MergeTransactions(ls.txns, incoming)

	if err := ls.commit(merged); err != nil {
		return 0, err
	}
	ls.log.Info().Int("incoming", len(incoming)).Int("added", added).Msg("transactions imported")
	return added, nil
}

// Filter returns the transactions inside window as of now.
func (ls *LedgerService) Filter(window string) []model.Transaction {
	return FilterByWindow(ls.txns, window, ls.now())
}

func (ls *LedgerService) TodayTotal() decimal.Decimal {
	return TotalOf(ls.Filter(constants.WindowToday))
}

// Export writes the full ledger as CSV, ignoring any window filter.
func (ls *LedgerService) Export(w io.Writer) error {
	if _, err := io.WriteString(w, SerializeCSV(ls.txns)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// ExportFileName is the suggested file name for an export made now.
func (ls *LedgerService) ExportFileName() string {
	return ExportFileName(ls.now())
}

// Import parses CSV from r and merges it into the ledger.
func (ls *LedgerService) Import(r io.Reader) (ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read csv: %w", err)
	}

	txns, dropped := DeserializeCSV(string(raw), ls.now())
	if len(txns) == 0 {
		return ImportResult{Dropped: dropped}, apperror.ErrNoValidRows()
	}

	added, err := ls.ImportMerge(txns)
	if err != nil {
		return ImportResult{}, err
	}

	return ImportResult{Parsed: len(txns), Added: added, Dropped: dropped}, nil
}

func (ls *LedgerService) commit(next []model.Transaction) error {
	if err := ls.records.SaveTransactions(next); err != nil {
		ls.log.Error().Err(err).Msg("failed to persist ledger")
		return err
	}
	ls.txns = next
	return nil
}
