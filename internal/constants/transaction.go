package constants

const (
	// Time windows
	WindowAll   = "all"
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"

	// Date Layout
	DateFormat      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

	// CSV
	CSVHeader         = "Transaction ID,Date,Shop Name,Amount (INR),UPI ID,Description"
	CSVHeaderMarker   = "Transaction ID"
	CSVMinColumns     = 4
	ImportedShopName  = "Imported"
	ExportFilePrefix  = "ledger_"
	ExportFileSuffix  = ".csv"
	ItemNameSeparator = " + "
)

var Windows = []string{WindowAll, WindowToday, WindowWeek, WindowMonth}
