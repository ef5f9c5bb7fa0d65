package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/fixpay/internal/ai"
	"github.com/hance08/fixpay/internal/config"
	"github.com/hance08/fixpay/internal/logger"
	"github.com/hance08/fixpay/internal/pos"
	"github.com/hance08/fixpay/internal/service"
	"github.com/hance08/fixpay/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Service    *service.Service
	Store      store.Repository
	Log        zerolog.Logger
	Extractor  *ai.MerchantExtractor
	Recognizer pos.Recognizer
}

// NewApp initialize config, logger, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	appDir, err := GetAppDataDir()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(appDir, "fixpay.db")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(appDir, "fixpay.log")
	}

	var logOut io.Writer = io.Discard
	logFile, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	} else {
		logOut = logFile
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, logOut)

	dbStore, err := store.NewStore(cfg.Database.Path, migrationFS)
	if err != nil {
		closeLog(logFile)
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc, err := service.NewService(store.NewRecords(dbStore, log), cfg, log, nil)
	if err != nil {
		_ = dbStore.Close()
		closeLog(logFile)
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	// A missing key is not fatal: AI features report it when used.
	client, err := ai.NewClient(cfg.AI)
	if err != nil {
		log.Debug().Msg("no AI credential configured")
	}

	voice := ai.NewVoiceAdapter(client, cfg.AI, cfg.Dictation, log)
	mic := ai.NewCommandMicrophone(cfg.Dictation.CaptureCommand)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
		closeLog(logFile)
	}

	log.Debug().Str("db", cfg.Database.Path).Msg("application started")

	return &App{
		Service:    svc,
		Store:      dbStore,
		Log:        log,
		Extractor:  ai.NewMerchantExtractor(client, cfg.AI, log),
		Recognizer: ai.NewVoiceRecognizer(mic, voice),
	}, cleanup, nil
}

func closeLog(f *os.File) {
	if f != nil {
		_ = f.Close()
	}
}

// GetAppDataDir returns the per-user directory holding config, database and log.
func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".fixpay"), nil
	}

	return filepath.Join(configDir, "fixpay"), nil
}
