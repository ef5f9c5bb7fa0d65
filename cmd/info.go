package cmd

import (
	"os"

	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/store"
	"github.com/hance08/fixpay/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(provide func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: provide(),
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(cfg.Database.Path); err == nil {
		dbExists = true
	}

	stored, err := store.NewRecords(r.app.Store, r.app.Log).Stored()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          cfg.Database.Path,
		DBExists:        dbExists,
		LogPath:         cfg.Log.File,
		DefaultCurrency: cfg.Defaults.Currency,
		AIConfigured:    cfg.HasAICredential(),
		StoredRecords:   stored,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
