package views

import (
	"strings"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	LogPath         string
	DefaultCurrency string
	AIConfigured    bool
	StoredRecords   []string
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	aiStatus := pterm.Green("Configured")
	if !data.AIConfigured {
		aiStatus = pterm.Yellow("Missing (QR scan and voice disabled)")
	}

	records := strings.Join(data.StoredRecords, ", ")
	if records == "" {
		records = pterm.Gray("(none)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Log File", data.LogPath},
		{"Default Currency", data.DefaultCurrency},
		{"AI Credential", aiStatus},
		{"Stored Records", records},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
