package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
)

// SerializeCSV renders every transaction in stored order under the fixed
// header. Fields are joined with commas and are NOT quoted: a field that
// contains a comma will not survive a round trip.
func SerializeCSV(txns []model.Transaction) string {
	lines := make([]string, 0, len(txns)+1)
	lines = append(lines, constants.CSVHeader)

	for _, tx := range txns {
		lines = append(lines, strings.Join([]string{
			tx.ID,
			tx.Timestamp,
			tx.ShopName,
			tx.Amount,
			tx.UPIID,
			tx.Items,
		}, ","))
	}

	return strings.Join(lines, "\n")
}

// DeserializeCSV parses text produced by SerializeCSV (or a hand-made file of
// the same shape). The first line is skipped only if it contains the header
// marker. Rows with fewer than four columns are dropped and counted. Columns
// are split on every comma; quoting is not understood.
func DeserializeCSV(text string, now time.Time) ([]model.Transaction, int) {
	lines := strings.Split(text, "\n")

	start := 0
	if strings.Contains(lines[0], constants.CSVHeaderMarker) {
		start = 1
	}

	var (
		txns    []model.Transaction
		dropped int
	)
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		cols := strings.Split(line, ",")
		if len(cols) < constants.CSVMinColumns {
			dropped++
			continue
		}

		txns = append(txns, model.Transaction{
			ID:        orDefault(cols, 0, strconv.FormatInt(now.UnixMilli()+int64(i), 10)),
			Timestamp: orDefault(cols, 1, now.UTC().Format(constants.TimestampLayout)),
			ShopName:  orDefault(cols, 2, constants.ImportedShopName),
			Amount:    cols[3],
			UPIID:     orDefault(cols, 4, ""),
			Items:     orDefault(cols, 5, ""),
		})
	}

	return txns, dropped
}

// ExportFileName returns ledger_<YYYY-MM-DD>.csv for the given day.
func ExportFileName(now time.Time) string {
	return constants.ExportFilePrefix + now.UTC().Format(constants.DateFormat) + constants.ExportFileSuffix
}

func orDefault(cols []string, i int, def string) string {
	if i < len(cols) && cols[i] != "" {
		return cols[i]
	}
	return def
}
