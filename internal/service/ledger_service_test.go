package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_AppendPrependsAndPersists(t *testing.T) {
	env := newTestEnv(t)
	ledger := env.svc.Ledger

	require.NoError(t, ledger.Append(txAt("1", "10", env.now.Add(-time.Hour))))
	require.NoError(t, ledger.Append(txAt("2", "20", env.now)))

	assert.Equal(t, []string{"2", "1"}, ids(ledger.All()))

	stored, err := env.records.LoadTransactions()
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(stored))
}

func TestLedgerService_AllReturnsCopy(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.svc.Ledger.Append(txAt("1", "10", env.now)))

	all := env.svc.Ledger.All()
	all[0].Amount = "999"

	tx, ok := env.svc.Ledger.Find("1")
	require.True(t, ok)
	assert.Equal(t, "10", tx.Amount)
}

func TestLedgerService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ledger := env.svc.Ledger
	for i, id := range []string{"1", "2", "3"} {
		require.NoError(t, ledger.Append(txAt(id, "10", env.now.Add(time.Duration(i)*time.Minute))))
	}

	require.NoError(t, ledger.Delete("2"))
	assert.Equal(t, []string{"3", "1"}, ids(ledger.All()))

	stored, err := env.records.LoadTransactions()
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids(stored))

	require.NoError(t, ledger.Delete("missing"))
	assert.Equal(t, []string{"3", "1"}, ids(ledger.All()))
}

func TestLedgerService_RequestDeleteWaitsForConfirm(t *testing.T) {
	env := newTestEnv(t)
	ledger := env.svc.Ledger
	require.NoError(t, ledger.Append(txAt("1", "10", env.now)))

	cancelled := ledger.RequestDelete("1")
	require.NoError(t, cancelled.Cancel())
	assert.Len(t, ledger.All(), 1)

	pending := ledger.RequestDelete("1")
	assert.Len(t, ledger.All(), 1)
	require.NoError(t, pending.Confirm())
	assert.Empty(t, ledger.All())

	err := pending.Confirm()
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestLedgerService_FilterAndTodayTotal(t *testing.T) {
	env := newTestEnv(t)
	ledger := env.svc.Ledger
	require.NoError(t, ledger.Append(txAt("old", "100", env.now.Add(-40*24*time.Hour))))
	require.NoError(t, ledger.Append(txAt("yesterday", "50", env.now.Add(-24*time.Hour))))
	require.NoError(t, ledger.Append(txAt("a", "45.50", env.now.Add(-time.Hour))))
	require.NoError(t, ledger.Append(txAt("b", "4.50", env.now)))

	assert.Equal(t, []string{"b", "a"}, ids(ledger.Filter(constants.WindowToday)))
	assert.Equal(t, []string{"b", "a", "yesterday"}, ids(ledger.Filter(constants.WindowWeek)))
	assert.Len(t, ledger.Filter(constants.WindowAll), 4)
	assert.Equal(t, "50", ledger.TodayTotal().String())
}

func TestLedgerService_ExportIgnoresFilter(t *testing.T) {
	env := newTestEnv(t)
	ledger := env.svc.Ledger
	require.NoError(t, ledger.Append(txAt("old", "100", env.now.Add(-40*24*time.Hour))))
	require.NoError(t, ledger.Append(txAt("new", "5", env.now)))

	var buf bytes.Buffer
	require.NoError(t, ledger.Export(&buf))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, constants.CSVHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "new,"))
	assert.True(t, strings.HasPrefix(lines[2], "old,"))
	assert.Equal(t, "ledger_2025-03-10.csv", ledger.ExportFileName())
}

func TestLedgerService_ImportMergesBySortedTimestamp(t *testing.T) {
	env := newTestEnv(t)
	ledger := env.svc.Ledger
	require.NoError(t, ledger.Append(txAt("1", "10", env.now.Add(-2*time.Hour))))

	csv := strings.Join([]string{
		constants.CSVHeader,
		"1," + env.now.UTC().Format(constants.TimestampLayout) + ",Other,99,x@y,",
		"2," + env.now.Add(-time.Hour).UTC().Format(constants.TimestampLayout) + ",Chai Point,20,chai@upi,",
		"3," + env.now.Add(-3*time.Hour).UTC().Format(constants.TimestampLayout) + ",Chai Point,30,chai@upi,",
		"bad,row",
	}, "\n")

	res, err := ledger.Import(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Parsed: 3, Added: 2, Dropped: 1}, res)
	assert.Equal(t, []string{"2", "1", "3"}, ids(ledger.All()))

	tx, ok := ledger.Find("1")
	require.True(t, ok)
	assert.Equal(t, "10", tx.Amount, "existing record wins on id collision")

	again, err := ledger.Import(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Zero(t, again.Added)
	assert.Len(t, ledger.All(), 3)
}

func TestLedgerService_ImportWithoutRows(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.Ledger.Import(strings.NewReader(constants.CSVHeader + "\nonly,two"))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, "No valid transactions found in file", apperror.Message(err))
	assert.Equal(t, 1, res.Dropped)
	assert.Empty(t, env.svc.Ledger.All())
}

func TestLedgerService_ImportExportRoundTrip(t *testing.T) {
	src := newTestEnv(t)
	for i, id := range []string{"1", "2", "3"} {
		require.NoError(t, src.svc.Ledger.Append(txAt(id, "1"+id, src.now.Add(time.Duration(i)*time.Hour))))
	}

	var buf bytes.Buffer
	require.NoError(t, src.svc.Ledger.Export(&buf))

	dst := newTestEnv(t)
	res, err := dst.svc.Ledger.Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Added)
	assert.Equal(t, src.svc.Ledger.All(), dst.svc.Ledger.All())
}
